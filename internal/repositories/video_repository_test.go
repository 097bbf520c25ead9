package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/blockseblock/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVideos() []models.Video {
	return []models.Video{
		{
			ID:          1,
			Title:       "Blockchain Fundamentals - Introduction",
			Filename:    "sample-video-1.mp4",
			URL:         "/uploads/sample-video-1.mp4",
			Size:        "15.20 MB",
			Duration:    "5:30",
			UploadDate:  "2025-01-15",
			Course:      "Blockchain Fundamentals",
			Description: "Introduction to blockchain technology and its core concepts",
		},
		{
			ID:          2,
			Title:       "Smart Contracts - Solidity Basics",
			Filename:    "sample-video-2.mp4",
			URL:         "/uploads/sample-video-2.mp4",
			Size:        "28.70 MB",
			Duration:    "12:45",
			UploadDate:  "2025-01-16",
			Course:      "Smart Contract Development",
			Description: "Learn the basics of Solidity programming language",
		},
	}
}

func strPtr(s string) *string { return &s }

func TestNewVideoRepository(t *testing.T) {
	repo := NewVideoRepository(seedVideos()...)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, repo.lastID)
}

func TestVideoRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		video         *models.Video
		expectedID    int
		expectedTitle string
	}{
		{
			name:          "with title",
			video:         &models.Video{Title: "Consensus Deep Dive", Filename: "video-1-1.mp4"},
			expectedID:    3,
			expectedTitle: "Consensus Deep Dive",
		},
		{
			name:          "default title",
			video:         &models.Video{Filename: "video-1-2.mp4"},
			expectedID:    3,
			expectedTitle: "Video 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewVideoRepository(seedVideos()...)

			err := repo.Create(context.Background(), tt.video)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, tt.video.ID)
			assert.Equal(t, tt.expectedTitle, tt.video.Title)
			stored, err := repo.GetByID(context.Background(), tt.expectedID)
			require.NoError(t, err)
			assert.Equal(t, *tt.video, *stored)
		})
	}
}

func TestVideoRepository_IDsAreNotReusedAfterDelete(t *testing.T) {
	repo := NewVideoRepository(seedVideos()...)
	ctx := context.Background()

	require.NoError(t, repo.DeleteByID(ctx, 1))

	v := &models.Video{Title: "after delete"}
	require.NoError(t, repo.Create(ctx, v))

	// len+1 would have produced 2 and collided with the remaining record
	assert.Equal(t, 3, v.ID)
	videos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, 2, videos[0].ID)
	assert.Equal(t, 3, videos[1].ID)
}

func TestVideoRepository_ConcurrentCreate(t *testing.T) {
	repo := NewVideoRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Video{})
		}()
	}
	wg.Wait()

	videos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 50)
	seen := make(map[int]bool)
	for _, v := range videos {
		assert.False(t, seen[v.ID], "duplicate id %d", v.ID)
		seen[v.ID] = true
	}
}

func TestVideoRepository_GetAll_InsertionOrderAndCopy(t *testing.T) {
	repo := NewVideoRepository(seedVideos()...)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Video{Title: "third"}))

	videos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{videos[0].ID, videos[1].ID, videos[2].ID})

	videos[0].Title = "mutated"
	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Blockchain Fundamentals - Introduction", stored.Title)
}

func TestVideoRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		expectedError bool
	}{
		{name: "success", id: 2},
		{name: "not found", id: 42, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewVideoRepository(seedVideos()...)

			video, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, video)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, video.ID)
			}
		})
	}
}

func TestVideoRepository_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		req           *models.UpdateVideoRequest
		expectedError bool
		expected      func(v models.Video) models.Video
	}{
		{
			name: "title only",
			id:   1,
			req:  &models.UpdateVideoRequest{Title: strPtr("New")},
			expected: func(v models.Video) models.Video {
				v.Title = "New"
				return v
			},
		},
		{
			name: "several fields",
			id:   2,
			req:  &models.UpdateVideoRequest{Duration: strPtr("13:00"), Course: strPtr("DeFi Protocols"), Description: strPtr("")},
			expected: func(v models.Video) models.Video {
				v.Duration = "13:00"
				v.Course = "DeFi Protocols"
				v.Description = ""
				return v
			},
		},
		{
			name:     "empty request",
			id:       1,
			req:      &models.UpdateVideoRequest{},
			expected: func(v models.Video) models.Video { return v },
		},
		{
			name:          "not found",
			id:            9,
			req:           &models.UpdateVideoRequest{Title: strPtr("New")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewVideoRepository(seedVideos()...)
			ctx := context.Background()

			updated, err := repo.Update(ctx, tt.id, tt.req)

			if tt.expectedError {
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			original := seedVideos()[tt.id-1]
			assert.Equal(t, tt.expected(original), *updated)
			stored, err := repo.GetByID(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, *updated, *stored)
		})
	}
}

func TestVideoRepository_DeleteByID(t *testing.T) {
	repo := NewVideoRepository(seedVideos()...)
	ctx := context.Background()

	require.NoError(t, repo.DeleteByID(ctx, 2))
	err := repo.DeleteByID(ctx, 2)
	assert.ErrorIs(t, err, models.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
