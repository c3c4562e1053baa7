package service

import (
	"context"

	"ad-hub/database"
	"ad-hub/database/model"

	"gorm.io/gorm"
)

// AdService owns the ad lifecycle. Existence and ownership checks run in
// the same transaction as the mutation they guard, so no request can
// observe a half-applied change.
type AdService struct {
	db *gorm.DB
}

func NewAdService(db *gorm.DB) *AdService {
	return &AdService{db: db}
}

func (s *AdService) Create(ctx context.Context, ownerId int, title, description string) (*model.Ad, error) {
	ad := &model.Ad{
		Title:       title,
		Description: description,
		OwnerId:     ownerId,
	}
	if err := s.db.WithContext(ctx).Create(ad).Error; err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *AdService) List(ctx context.Context) ([]model.Ad, error) {
	var ads []model.Ad
	err := s.db.WithContext(ctx).Order("id ASC").Find(&ads).Error
	return ads, err
}

// Update applies only the provided fields; a nil field leaves the current
// value untouched. Non-owners get ErrForbidden.
func (s *AdService) Update(ctx context.Context, adId, ownerId int, title, description *string) (*model.Ad, error) {
	ad := &model.Ad{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(ad, "id = ?", adId).Error; err != nil {
			if database.IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		if ad.OwnerId != ownerId {
			return ErrForbidden
		}
		if title != nil {
			ad.Title = *title
		}
		if description != nil {
			ad.Description = *description
		}
		return tx.Save(ad).Error
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// Delete removes the ad and all its comments as one unit.
func (s *AdService) Delete(ctx context.Context, adId, ownerId int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ad := &model.Ad{}
		if err := tx.First(ad, "id = ?", adId).Error; err != nil {
			if database.IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		if ad.OwnerId != ownerId {
			return ErrForbidden
		}
		if err := tx.Where("ad_id = ?", adId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(ad).Error
	})
}
