package models

import "time"

// ProgressState represents the state of a learner in a course
type ProgressState string

const (
	ProgressStateNotStarted ProgressState = "not-started"
	ProgressStateInProgress ProgressState = "in-progress"
	ProgressStateCompleted  ProgressState = "completed"
)

// RewardKind represents the reason category of a token movement
type RewardKind string

const (
	RewardKindLesson           RewardKind = "lesson"
	RewardKindQuizBonus        RewardKind = "quiz_bonus"
	RewardKindCourseCompletion RewardKind = "course_completion"
	RewardKindRedemption       RewardKind = "redemption"
	RewardKindCredit           RewardKind = "credit"
)

// RewardEvent is emitted by a course session when tokens are earned
type RewardEvent struct {
	Kind     RewardKind `json:"kind"`
	Amount   int        `json:"amount"`
	Reason   string     `json:"reason"`
	CourseID int        `json:"courseId"`
	LessonID int        `json:"lessonId,omitempty"`
}

// LedgerEntry represents a single token movement in a learner's history
type LedgerEntry struct {
	ID       string     `json:"id"`
	Kind     RewardKind `json:"kind"`
	Amount   int        `json:"amount"`
	Reason   string     `json:"reason"`
	Date     string     `json:"date"`
	CourseID *int       `json:"courseId,omitempty"`
	LessonID *int       `json:"lessonId,omitempty"`
}

// Announcement is a pending "reward granted" notification
type Announcement struct {
	ID      string    `json:"id"`
	Amount  int       `json:"amount"`
	Reason  string    `json:"reason"`
	ReadyAt time.Time `json:"readyAt"`
}

// CourseProgress represents a learner's progress in a course
type CourseProgress struct {
	CourseID         int           `json:"courseId"`
	State            ProgressState `json:"state"`
	Percentage       int           `json:"percentage"`
	CompletedLessons []int         `json:"completedLessons"`
	TotalLessons     int           `json:"totalLessons"`
	QuizScores       map[int]int   `json:"quizScores"`
}

// CompletionResult is returned after a lesson or quiz completion
type CompletionResult struct {
	Progress CourseProgress `json:"progress"`
	Rewards  []LedgerEntry  `json:"rewards"`
	Balance  int            `json:"balance"`
}

// QuizAnswer is the graded outcome of one question
type QuizAnswer struct {
	Question    string `json:"question"`
	Selected    int    `json:"selected"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// QuizGrade is the result of grading a set of answers
type QuizGrade struct {
	Score   int          `json:"score"`
	Correct int          `json:"correct"`
	Total   int          `json:"total"`
	Answers []QuizAnswer `json:"answers"`
}

// QuizResult is returned after a quiz submission
type QuizResult struct {
	Grade QuizGrade `json:"grade"`
	CompletionResult
}

// SubmitQuizRequest represents a quiz submission
type SubmitQuizRequest struct {
	Answers []int `json:"answers" example:"1,1"`
}

// Wallet represents a learner's balance and token history
type Wallet struct {
	Principal string        `json:"principal"`
	Balance   int           `json:"balance"`
	History   []LedgerEntry `json:"history"`
}
