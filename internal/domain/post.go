package domain

import "context"

// Post is a text post visible to all authenticated users. Posts carry no
// author and are never edited or deleted; only the like counter changes.
type Post struct {
	ID      int64
	Content string
	Likes   int64
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
}
