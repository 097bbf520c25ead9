package models

// Video represents an uploaded video and its catalog metadata
type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        string `json:"size"`
	Duration    string `json:"duration"`
	UploadDate  string `json:"uploadDate"`
	Course      string `json:"course"`
	Description string `json:"description"`
	UploadedBy  string `json:"uploadedBy,omitempty"`
}

// UploadVideoInput carries the multipart fields of an upload request
type UploadVideoInput struct {
	FieldName        string
	OriginalFilename string
	ContentType      string
	Title            string
	Duration         string
	Course           string
	Description      string
	UploadedBy       string
}

// UpdateVideoRequest represents a request to update video metadata (partial update).
// Fields that are absent from the body stay untouched; the ID can never change.
type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty" example:"New title"`
	Duration    *string `json:"duration,omitempty" example:"12:45"`
	Course      *string `json:"course,omitempty" example:"Smart Contract Development"`
	Description *string `json:"description,omitempty" example:"Updated description"`
}

// Apply merges the provided fields into the video
func (r *UpdateVideoRequest) Apply(v *Video) {
	if r.Title != nil {
		v.Title = *r.Title
	}
	if r.Duration != nil {
		v.Duration = *r.Duration
	}
	if r.Course != nil {
		v.Course = *r.Course
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
}
