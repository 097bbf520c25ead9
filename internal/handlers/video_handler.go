package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/blockseblock/backend/internal/middleware"
	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// multipartMemory is the part of an upload kept in memory; the rest spills to temp files
	multipartMemory = 32 << 20
	maxJSONBodySize = 1 << 20
	// uploadFieldsHeadroom is the body allowance on top of the file limit for form fields and boundaries
	uploadFieldsHeadroom = 1 << 20
)

// VideoService defines the interface for video service operations
type VideoService interface {
	// Method Upload stores an uploaded video and registers it in the catalog.
	//
	// "reader" parameter is the file content.
	// "input" parameter holds the form fields and the file header data.
	//
	// If some error will occur during upload, the error will be returned together with "nil" value.
	Upload(ctx context.Context, reader io.Reader, input models.UploadVideoInput) (*models.Video, error)
	// Method List returns the whole catalog in upload order.
	List(ctx context.Context) ([]models.Video, error)
	// Method Get retrieves a video by its ID.
	//
	// If the video does not exist, an error wrapping models.ErrNotFound is returned.
	Get(ctx context.Context, id int) (*models.Video, error)
	// Method Update merges the provided fields into the video metadata.
	//
	// "id" parameter is the ID of the video.
	// "req" parameter holds the fields to change.
	//
	// If some error will occur during update, the error will be returned together with "nil" value.
	Update(ctx context.Context, id int, req *models.UpdateVideoRequest) (*models.Video, error)
	// Method Delete removes the video file and its catalog record.
	Delete(ctx context.Context, id int) error
	// Method OpenFile opens a stored file for range-capable serving.
	OpenFile(filename string) (*os.File, error)
}

// VideoHandler handles video-related HTTP requests
type VideoHandler struct {
	BaseHandler
	videoService   VideoService
	maxUploadBytes int64
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService VideoService, logger *zap.Logger, maxUploadBytes int64) *VideoHandler {
	return &VideoHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		videoService:   videoService,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes registers all video handler routes
func (h *VideoHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequestSizeLimit(h.maxUploadBytes+uploadFieldsHeadroom)).Post("/api/upload-video", h.Upload)
	r.Route("/api/videos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.With(middleware.RequestSizeLimit(maxJSONBodySize)).Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Get("/uploads/{filename}", h.ServeFile)
}

// Upload handles POST /api/upload-video
// @Summary Upload a video
// @Description Upload a video file with optional metadata. Only video/* content types are accepted.
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Video file"
// @Param title formData string false "Title"
// @Param duration formData string false "Duration label"
// @Param course formData string false "Course name"
// @Param description formData string false "Description"
// @Param X-Principal header string false "Uploader principal"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.ErrorResponse "No file or not a video"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/upload-video [post]
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.Logger.Info("upload rejected, body too large", zap.Int64("limit", maxErr.Limit))
			h.RespondServiceError(w, r, models.ErrFileTooLarge, "upload rejected")
			return
		}
		h.Logger.Info("failed to parse multipart form", zap.Error(err))
		h.RespondServiceError(w, r, models.ErrNoFile, "upload rejected")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("video")
	if err != nil {
		h.RespondServiceError(w, r, models.ErrNoFile, "upload rejected")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.Logger.Info("upload rejected, file too large",
			zap.Int64("size", header.Size),
			zap.Int64("limit", h.maxUploadBytes),
		)
		h.RespondServiceError(w, r, models.ErrFileTooLarge, "upload rejected")
		return
	}

	video, err := h.videoService.Upload(r.Context(), file, uploadInput(r, header))
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to upload video")
		return
	}

	h.Logger.Info("video uploaded",
		zap.Int("id", video.ID),
		zap.String("filename", video.Filename),
		zap.String("size", video.Size),
	)
	h.RespondJSON(w, http.StatusOK, models.VideoResponse{
		Success: true,
		Video:   video,
		Message: "Video uploaded successfully!",
	})
}

func uploadInput(r *http.Request, header *multipart.FileHeader) models.UploadVideoInput {
	return models.UploadVideoInput{
		FieldName:        "video",
		OriginalFilename: header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Title:            r.FormValue("title"),
		Duration:         r.FormValue("duration"),
		Course:           r.FormValue("course"),
		Description:      r.FormValue("description"),
		UploadedBy:       middleware.GetPrincipal(r.Context()),
	}
}

// List handles GET /api/videos
// @Summary List videos
// @Description Retrieve all videos in upload order
// @Tags videos
// @Produce json
// @Success 200 {object} models.VideosResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/videos [get]
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.List(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to list videos")
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}
	h.RespondJSON(w, http.StatusOK, models.VideosResponse{Success: true, Videos: videos})
}

// Get handles GET /api/videos/{id}
// @Summary Get a video
// @Description Retrieve video metadata by ID
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} models.VideoResponse
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /api/videos/{id} [get]
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Video not found")
		return
	}

	video, err := h.videoService.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get video")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.VideoResponse{Success: true, Video: video})
}

// Update handles PUT /api/videos/{id}
// @Summary Update video metadata
// @Description Merge title, duration, course and description into the video. Other fields, including id, are ignored.
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body models.UpdateVideoRequest true "Fields to change"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /api/videos/{id} [put]
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Video not found")
		return
	}

	var req models.UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Info("invalid update body", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	video, err := h.videoService.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to update video")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.VideoResponse{Success: true, Video: video})
}

// Delete handles DELETE /api/videos/{id}
// @Summary Delete a video
// @Description Remove the video file from disk and its record from the catalog
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/videos/{id} [delete]
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Video not found")
		return
	}

	if err := h.videoService.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, r, err, "failed to delete video")
		return
	}

	h.Logger.Info("video deleted", zap.Int("id", id))
	h.RespondJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Video deleted successfully"})
}

// ServeFile handles GET /uploads/{filename}
// @Summary Download an uploaded file
// @Description Serve the raw bytes of an uploaded video. Range requests are supported.
// @Tags videos
// @Produce application/octet-stream
// @Param filename path string true "Stored file name"
// @Param Range header string false "Range"
// @Success 200 "File content"
// @Success 206 "Partial file content"
// @Failure 404 {object} models.ErrorResponse "File not found"
// @Router /uploads/{filename} [get]
func (h *VideoHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	file, err := h.videoService.OpenFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, models.ErrInvalidFilename) {
			h.RespondError(w, http.StatusNotFound, "File not found")
			return
		}
		h.Logger.Error("failed to open file", zap.String("filename", filename), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		h.RespondError(w, http.StatusNotFound, "File not found")
		return
	}

	http.ServeContent(w, r, filename, info.ModTime(), file)
}
