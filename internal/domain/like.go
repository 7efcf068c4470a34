package domain

import "context"

// LikeOutcome reports what a like attempt did. A repeated like is not an
// error; it is a distinct no-op outcome.
type LikeOutcome string

const (
	// LikeLiked means the ledger row was inserted and the post counter
	// incremented.
	LikeLiked LikeOutcome = "liked"
	// LikeAlreadyLiked means the (user, post) pair already existed and
	// nothing changed.
	LikeAlreadyLiked LikeOutcome = "already_liked"
)

// LikeRepository is the append-only ledger of like actions. At most one row
// may ever exist per (user, post) pair; there is no unlike.
type LikeRepository interface {
	// Like inserts the (userID, postID) pair and increments the post's
	// like counter in one atomic unit of work. If the pair already
	// exists it reports LikeAlreadyLiked and leaves the counter alone.
	Like(ctx context.Context, userID, postID int64) (LikeOutcome, error)
	Exists(ctx context.Context, userID, postID int64) (bool, error)
}
