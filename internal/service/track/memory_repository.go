package track

import (
	"context"
	"sort"

	"polylinegpx/internal/model"
	"polylinegpx/internal/service/storage"
)

// MemoryRepository keeps tracks in process memory; used when no database is configured
type MemoryRepository struct {
	storage storage.Storage[string, *model.Track]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{storage: storage.NewMemoryStorage[string, *model.Track]()}
}

func (r *MemoryRepository) Create(_ context.Context, t *model.Track) error {
	stored := *t
	r.storage.Set(t.ID, &stored)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*model.Track, error) {
	t, ok := r.storage.Get(id)
	if !ok {
		return nil, ErrTrackNotFound
	}
	out := *t
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*model.Track, error) {
	values := r.storage.GetAllValues()
	tracks := make([]*model.Track, 0, len(values))
	for _, t := range values {
		out := *t
		tracks = append(tracks, &out)
	}
	sort.Slice(tracks, func(i, j int) bool {
		if !tracks[i].CreatedAt.Equal(tracks[j].CreatedAt) {
			return tracks[i].CreatedAt.After(tracks[j].CreatedAt)
		}
		return tracks[i].ID < tracks[j].ID
	})
	return tracks, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	if !r.storage.Delete(id) {
		return ErrTrackNotFound
	}
	return nil
}
