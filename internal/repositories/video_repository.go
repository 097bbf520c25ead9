package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/blockseblock/backend/internal/models"
)

// videoRepository is the process-lifetime video catalog.
// IDs come from a counter that only grows, so an ID is never handed out twice.
type videoRepository struct {
	mu     sync.RWMutex
	videos []models.Video
	lastID int
}

// NewVideoRepository creates a new video repository holding the seed records
func NewVideoRepository(seed ...models.Video) *videoRepository {
	r := &videoRepository{
		videos: make([]models.Video, 0, len(seed)),
	}
	for _, v := range seed {
		r.videos = append(r.videos, v)
		r.lastID = max(r.lastID, v.ID)
	}
	return r
}

// Create appends a new video record and assigns its ID.
// A record without a title is named after its ID.
func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	video.ID = r.lastID
	if video.Title == "" {
		video.Title = fmt.Sprintf("Video %d", video.ID)
	}
	r.videos = append(r.videos, *video)
	return nil
}

// GetAll retrieves all video records in insertion order
func (r *videoRepository) GetAll(ctx context.Context) ([]models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.videos), nil
}

// Count returns the number of video records
func (r *videoRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.videos), nil
}

// GetByID retrieves a video record by ID
func (r *videoRepository) GetByID(ctx context.Context, id int) (*models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrNotFound, id)
	}
	video := r.videos[i]
	return &video, nil
}

// Update merges the provided fields into a video record
func (r *videoRepository) Update(ctx context.Context, id int, req *models.UpdateVideoRequest) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrNotFound, id)
	}
	req.Apply(&r.videos[i])
	video := r.videos[i]
	return &video, nil
}

// DeleteByID removes a video record by ID
func (r *videoRepository) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", models.ErrNotFound, id)
	}
	r.videos = slices.Delete(r.videos, i, i+1)
	return nil
}

func (r *videoRepository) indexOf(id int) int {
	return slices.IndexFunc(r.videos, func(v models.Video) bool {
		return v.ID == id
	})
}
