package service

import (
	"context"
	"fmt"

	"github.com/Roopikasri/Forum-form/internal/domain"
)

// LikeService applies like actions against the ledger.
type LikeService struct {
	likes domain.LikeRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likes domain.LikeRepository) *LikeService {
	return &LikeService{likes: likes}
}

// LikePost records a like of postID by userID. A repeated like reports
// LikeAlreadyLiked and changes nothing; there is no unlike.
func (s *LikeService) LikePost(ctx context.Context, userID, postID int64) (domain.LikeOutcome, error) {
	outcome, err := s.likes.Like(ctx, userID, postID)
	if err != nil {
		return "", fmt.Errorf("like post: %w", err)
	}
	return outcome, nil
}

// HasLiked reports whether userID has already liked postID.
func (s *LikeService) HasLiked(ctx context.Context, userID, postID int64) (bool, error) {
	return s.likes.Exists(ctx, userID, postID)
}
