package service

import (
	"context"

	"ad-hub/database"
	"ad-hub/database/model"

	"gorm.io/gorm"
)

// CommentService appends comments under ads, at most one per user per ad.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Add inserts a comment for an existing ad. The ad existence check and the
// insert share one transaction, so an ad deleted concurrently cannot leave
// an orphan comment behind. The (ad_id, owner_id) unique index, not a
// pre-check, decides duplicate submissions racing each other: one wins,
// the other gets ErrDuplicateComment.
func (s *CommentService) Add(ctx context.Context, adId, ownerId int, text string) (*model.Comment, error) {
	comment := &model.Comment{
		Text:    text,
		AdId:    adId,
		OwnerId: ownerId,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Ad{}).Where("id = ?", adId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Create(comment).Error; err != nil {
			if database.IsDuplicated(err) {
				return ErrDuplicateComment
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForAd returns all comments of an ad, or ErrNotFound if the ad does
// not exist.
func (s *CommentService) ListForAd(ctx context.Context, adId int) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Ad{}).Where("id = ?", adId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Where("ad_id = ?", adId).Find(&comments).Error
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
