package models

import "errors"

var (
	// ErrNotFound is returned when a video record does not exist
	ErrNotFound = errors.New("video not found")
	// ErrInvalidFileType is returned when an upload is not declared as a video
	ErrInvalidFileType = errors.New("only video files are allowed")
	// ErrNoFile is returned when an upload request carries no file
	ErrNoFile = errors.New("no video file provided")
	// ErrFileTooLarge is returned when an upload exceeds the configured limit
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidFilename is returned for stored names that could escape the storage root
	ErrInvalidFilename = errors.New("invalid filename")

	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrNotAQuiz            = errors.New("lesson is not a quiz")
	ErrInvalidScore        = errors.New("score must be between 0 and 100")
	ErrInvalidAnswers      = errors.New("answers do not match the quiz")
	ErrEmptyCourse         = errors.New("course has no lessons")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrItemNotFound        = errors.New("store item not found")
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrMissingPrincipal    = errors.New("principal is required")

	ErrUserNotFound = errors.New("user not found")
	ErrInvalidName  = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email format")
)
