package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/storage"
	"github.com/gabriel-vasile/mimetype"
)

const (
	defaultDuration = "Unknown"
	defaultCourse   = "Unassigned"
	uploadDateFmt   = "2006-01-02"
)

// Storage defines the interface for video file storage operations
type Storage interface {
	// Create creates a new file and returns a WriteCloser.
	// It fails if a file with the same name already exists.
	Create(name string) (io.WriteCloser, error)

	// OpenFile opens a file and returns *os.File for use with http.ServeContent
	OpenFile(name string) (*os.File, error)

	// Delete removes a file
	Delete(name string) error
}

// VideoRepository defines the interface for video metadata access
type VideoRepository interface {
	// Create appends a record and assigns its ID
	//
	// "ctx" is the context for the request.
	// "video" is the record to store; its ID is overwritten.
	//
	// Returns an error if any.
	Create(ctx context.Context, video *models.Video) error
	// GetAll retrieves all records in insertion order
	GetAll(ctx context.Context) ([]models.Video, error)
	// GetByID retrieves a record by ID
	//
	// Returns an error wrapping models.ErrNotFound if the record does not exist.
	GetByID(ctx context.Context, id int) (*models.Video, error)
	// Update merges the provided fields into a record
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the record.
	// "req" holds the fields to change; nil fields are left untouched.
	//
	// Returns the updated record and an error if any.
	Update(ctx context.Context, id int, req *models.UpdateVideoRequest) (*models.Video, error)
	// DeleteByID removes a record by ID
	DeleteByID(ctx context.Context, id int) error
}

// UploadRecorder receives a notification for every stored upload
type UploadRecorder interface {
	VideoUploaded(bytes int64)
}

// VideoService handles business logic for video operations
type VideoService struct {
	repo     VideoRepository
	storage  Storage
	recorder UploadRecorder
	now      func() time.Time
}

// NewVideoService creates a new video service.
// "recorder" may be nil.
func NewVideoService(repo VideoRepository, storage Storage, recorder UploadRecorder) *VideoService {
	return &VideoService{
		repo:     repo,
		storage:  storage,
		recorder: recorder,
		now:      time.Now,
	}
}

// Upload stores the video streamed from reader and registers it in the catalog.
// The file is removed again if anything fails after it was created.
//
// "reader" is the file content.
// "input" holds the multipart form fields and file header data.
//
// Returns the created video record and an error if any.
func (s *VideoService) Upload(ctx context.Context, reader io.Reader, input models.UploadVideoInput) (*models.Video, error) {
	if reader == nil {
		return nil, models.ErrNoFile
	}
	if !IsVideoContentType(input.ContentType) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidFileType, input.ContentType)
	}

	filename := storage.GenerateFileName(input.FieldName, InferExtension(input.OriginalFilename, input.ContentType))

	writeCloser, err := s.storage.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	sizeWriter := storage.NewSizeWriter()
	_, err = io.Copy(writeCloser, io.TeeReader(reader, sizeWriter))
	if closeErr := writeCloser.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.cleanup(filename)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	video := &models.Video{
		Title:       strings.TrimSpace(input.Title),
		Filename:    filename,
		URL:         "/uploads/" + filename,
		Size:        storage.FormatSize(sizeWriter.Size()),
		Duration:    valueOr(input.Duration, defaultDuration),
		UploadDate:  s.now().UTC().Format(uploadDateFmt),
		Course:      valueOr(input.Course, defaultCourse),
		Description: input.Description,
		UploadedBy:  input.UploadedBy,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.cleanup(filename)
		return nil, fmt.Errorf("failed to create video record: %w", err)
	}

	if s.recorder != nil {
		s.recorder.VideoUploaded(sizeWriter.Size())
	}
	return video, nil
}

// List returns all videos in upload order
func (s *VideoService) List(ctx context.Context) ([]models.Video, error) {
	return s.repo.GetAll(ctx)
}

// Get retrieves a video by ID
func (s *VideoService) Get(ctx context.Context, id int) (*models.Video, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the given fields into the video metadata
func (s *VideoService) Update(ctx context.Context, id int, req *models.UpdateVideoRequest) (*models.Video, error) {
	if req == nil {
		req = &models.UpdateVideoRequest{}
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes the video file and its catalog record.
// A file that is already gone from disk does not prevent the record from being removed.
func (s *VideoService) Delete(ctx context.Context, id int) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(video.Filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete video record: %w", err)
	}
	return nil
}

// OpenFile returns an *os.File for use with http.ServeContent
func (s *VideoService) OpenFile(filename string) (*os.File, error) {
	return s.storage.OpenFile(filename)
}

func (s *VideoService) cleanup(filename string) {
	_ = s.storage.Delete(filename)
}

// IsVideoContentType reports whether the declared content type is a video type
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/")
}

// InferExtension returns the extension of the original file name,
// falling back to the registered extension of the content type.
//
// Returns an empty string if neither is known.
func InferExtension(originalFilename, contentType string) string {
	if ext := filepath.Ext(filepath.Base(originalFilename)); isPlainExtension(ext) {
		return strings.ToLower(ext)
	}
	if mime := mimetype.Lookup(contentType); mime != nil {
		return mime.Extension()
	}
	return ""
}

// isPlainExtension accepts ".ext" made of ASCII letters and digits only
func isPlainExtension(ext string) bool {
	if len(ext) < 2 || ext[0] != '.' {
		return false
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
