package models

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// VideoResponse wraps a single video
type VideoResponse struct {
	Success bool   `json:"success"`
	Video   *Video `json:"video"`
	Message string `json:"message,omitempty"`
}

// VideosResponse wraps the video catalog
type VideosResponse struct {
	Success bool    `json:"success"`
	Videos  []Video `json:"videos"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// CoursesResponse wraps the course list
type CoursesResponse struct {
	Success bool             `json:"success"`
	Courses []CourseListItem `json:"courses"`
}

// CourseResponse wraps a full course
type CourseResponse struct {
	Success bool    `json:"success"`
	Course  *Course `json:"course"`
}

// ProgressResponse wraps a learner's course progress
type ProgressResponse struct {
	Success  bool            `json:"success"`
	Progress *CourseProgress `json:"progress"`
}

// CompletionResponse wraps a lesson completion result
type CompletionResponse struct {
	Success bool              `json:"success"`
	Result  *CompletionResult `json:"result"`
}

// QuizResponse wraps a quiz submission result
type QuizResponse struct {
	Success bool        `json:"success"`
	Result  *QuizResult `json:"result"`
}

// WalletResponse wraps a learner's wallet
type WalletResponse struct {
	Success bool    `json:"success"`
	Wallet  *Wallet `json:"wallet"`
}

// AnnouncementsResponse wraps the announcements that became due
type AnnouncementsResponse struct {
	Success       bool           `json:"success"`
	Announcements []Announcement `json:"announcements"`
}

// StoreItemsResponse wraps the store items
type StoreItemsResponse struct {
	Success bool        `json:"success"`
	Items   []StoreItem `json:"items"`
}

// RedemptionResponse wraps a redemption result
type RedemptionResponse struct {
	Success    bool              `json:"success"`
	Redemption *RedemptionResult `json:"redemption"`
}

// UserResponse wraps a single user profile
type UserResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// UsersResponse wraps the list of registered users
type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}
