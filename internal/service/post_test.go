package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Roopikasri/Forum-form/internal/domain"
	"github.com/Roopikasri/Forum-form/internal/service"
)

func TestPostService_CreatePost(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	post, err := posts.CreatePost(ctx, "hello world")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}
	if post.Likes != 0 {
		t.Fatalf("expected 0 likes on new post, got %d", post.Likes)
	}
}

func TestPostService_CreatePost_Empty(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	if _, err := posts.CreatePost(ctx, "seed"); err != nil {
		t.Fatalf("CreatePost seed: %v", err)
	}

	_, err := posts.CreatePost(ctx, "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// The rejected post must leave the list unchanged.
	listed, err := posts.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "seed" {
		t.Fatalf("expected list unchanged after rejected create, got %+v", listed)
	}
}

func TestPostService_ListPosts_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	contents := []string{"one", "two", "three"}
	for _, c := range contents {
		if _, err := posts.CreatePost(ctx, c); err != nil {
			t.Fatalf("CreatePost %q: %v", c, err)
		}
	}

	listed, err := posts.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != len(contents) {
		t.Fatalf("expected %d posts, got %d", len(contents), len(listed))
	}
	for i, c := range contents {
		if listed[i].Content != c {
			t.Fatalf("position %d: expected %q, got %q", i, c, listed[i].Content)
		}
	}
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())

	_, err := posts.GetPost(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
