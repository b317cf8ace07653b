package track

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"polylinegpx/internal/model"
	"polylinegpx/internal/service/conversion"
	"polylinegpx/internal/util"
)

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrInvalidTrack  = errors.New("invalid track")
)

// Repository persists saved tracks
type Repository interface {
	Create(ctx context.Context, t *model.Track) error
	Get(ctx context.Context, id string) (*model.Track, error)
	List(ctx context.Context) ([]*model.Track, error)
	Delete(ctx context.Context, id string) error
}

type TrackService struct {
	repo       Repository
	conversion *conversion.ConversionService
	now        func() time.Time
}

func NewTrackService(repo Repository, conv *conversion.ConversionService) *TrackService {
	return &TrackService{
		repo:       repo,
		conversion: conv,
		now:        time.Now,
	}
}

// Create validates the polyline by decoding it and saves the track with its summary
func (s *TrackService) Create(ctx context.Context, name, polyline string, precision int) (*model.Track, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTrack)
	}
	if precision == 0 {
		precision = s.conversion.DefaultPrecision()
	}

	points, err := s.conversion.DecodePolyline(polyline, precision)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrack, err)
	}
	summary := s.conversion.Summarize(points)

	now := s.now().UTC()
	t := &model.Track{
		ID:             util.ShortUUID(),
		Name:           name,
		Polyline:       polyline,
		Precision:      precision,
		PointCount:     summary.Count,
		DistanceMeters: summary.DistanceMeters,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	log.Printf("Saved track %s (%d points, %.0f m)", t.ID, t.PointCount, t.DistanceMeters)
	return t, nil
}

func (s *TrackService) Get(ctx context.Context, id string) (*model.Track, error) {
	return s.repo.Get(ctx, id)
}

// List returns saved tracks, newest first
func (s *TrackService) List(ctx context.Context) ([]*model.Track, error) {
	return s.repo.List(ctx)
}

// Delete removes the track and evicts its cached GPX document
func (s *TrackService) Delete(ctx context.Context, id string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// A stale cache entry expires on its own, so eviction failures are not fatal
	if err := s.conversion.EvictGPX(ctx, t.Polyline, t.Precision); err != nil {
		log.Printf("Track %s deleted but cache eviction failed: %v", id, err)
	}
	return nil
}

// GPX renders the saved track as a GPX document
func (s *TrackService) GPX(ctx context.Context, id string) (*model.Track, string, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	doc, err := s.conversion.PolylineToGPX(ctx, t.Polyline, t.Precision)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render track %s: %w", id, err)
	}
	return t, doc, nil
}
