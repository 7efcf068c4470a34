package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Roopikasri/Forum-form/internal/domain"
)

// LikeRepository implements domain.LikeRepository using SQLite.
//
// The ledger insert and the counter increment run inside one transaction so
// that concurrent likes of the same post never lose an increment, and a
// duplicate attempt by the same user commits nothing.
type LikeRepository struct {
	db *sql.DB
}

// NewLikeRepository creates a new SQLite-backed LikeRepository.
func NewLikeRepository(db *DB) *LikeRepository {
	return &LikeRepository{db: db.SqlDB}
}

func (r *LikeRepository) Like(ctx context.Context, userID, postID int64) (domain.LikeOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO user_likes (user_id, post_id) VALUES (?, ?)",
		userID, postID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			// The pair already exists; the rolled-back transaction
			// changed nothing.
			return domain.LikeAlreadyLiked, nil
		}
		return "", fmt.Errorf("insert like: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE posts SET likes = likes + 1 WHERE id = ?", postID,
	); err != nil {
		return "", fmt.Errorf("increment like counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit like: %w", err)
	}
	return domain.LikeLiked, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM user_likes WHERE user_id = ? AND post_id = ?",
		userID, postID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query like: %w", err)
	}
	return count > 0, nil
}
