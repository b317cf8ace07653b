package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"polylinegpx/internal/model"
	"polylinegpx/internal/service/track"
)

// TrackRepository stores tracks in PostgreSQL
type TrackRepository struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

func (r *TrackRepository) Create(ctx context.Context, t *model.Track) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to insert track %s: %w", t.ID, err)
	}
	return nil
}

func (r *TrackRepository) Get(ctx context.Context, id string) (*model.Track, error) {
	var t model.Track
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, track.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load track %s: %w", id, err)
	}
	return &t, nil
}

func (r *TrackRepository) List(ctx context.Context) ([]*model.Track, error) {
	var tracks []*model.Track
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

func (r *TrackRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Track{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete track %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return track.ErrTrackNotFound
	}
	return nil
}
