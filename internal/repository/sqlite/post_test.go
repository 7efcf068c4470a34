package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Roopikasri/Forum-form/internal/domain"
	"github.com/Roopikasri/Forum-form/internal/repository/sqlite"
)

func TestPostRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	post := &domain.Post{Content: "first post"}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.ID == 0 {
		t.Fatal("expected post ID to be set after create")
	}
	if post.Likes != 0 {
		t.Fatalf("expected new post to have 0 likes, got %d", post.Likes)
	}
}

func TestPostRepository_List_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	contents := []string{"alpha", "beta", "gamma", "delta"}
	for _, c := range contents {
		if err := repo.Create(ctx, &domain.Post{Content: c}); err != nil {
			t.Fatalf("Create %q: %v", c, err)
		}
	}

	posts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(posts) != len(contents) {
		t.Fatalf("expected %d posts, got %d", len(contents), len(posts))
	}
	for i, c := range contents {
		if posts[i].Content != c {
			t.Fatalf("position %d: expected %q, got %q", i, c, posts[i].Content)
		}
	}
}

func TestPostRepository_List_OrderUnaffectedByLikes(t *testing.T) {
	db := newTestDB(t)
	posts := sqlite.NewPostRepository(db)
	likes := sqlite.NewLikeRepository(db)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		p := &domain.Post{Content: fmt.Sprintf("post %d", i)}
		if err := posts.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, p.ID)
	}

	// Heavily like the last post; ordering must not change.
	for userID := int64(1); userID <= 5; userID++ {
		if _, err := likes.Like(ctx, userID, ids[2]); err != nil {
			t.Fatalf("Like: %v", err)
		}
	}

	listed, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, id := range ids {
		if listed[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, listed[i].ID)
		}
	}
	if listed[2].Likes != 5 {
		t.Fatalf("expected 5 likes on last post, got %d", listed[2].Likes)
	}
}

func TestPostRepository_List_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty list, got %d posts", len(posts))
	}
}

func TestPostRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	post := &domain.Post{Content: "find me"}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Content != "find me" {
		t.Fatalf("expected content %q, got %q", "find me", found.Content)
	}
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
