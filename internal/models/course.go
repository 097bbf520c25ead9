package models

import "encoding/json"

// LessonType represents the kind of content a lesson carries
type LessonType string

const (
	LessonTypeVideo    LessonType = "video"
	LessonTypeQuiz     LessonType = "quiz"
	LessonTypeExercise LessonType = "exercise"
	LessonTypeLab      LessonType = "lab"
	LessonTypeReading  LessonType = "reading"
)

// Course represents a course in the learning catalog
type Course struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Image       string    `json:"image"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter represents an ordered group of lessons inside a course
type Chapter struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	TokenReward int      `json:"tokenReward"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson represents a single lesson. Its type is defined by the Content variant.
type Lesson struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Duration    string        `json:"duration"`
	Difficulty  string        `json:"difficulty"`
	TokenReward int           `json:"tokenReward"`
	Content     LessonContent `json:"content"`
}

// LessonContent is the type-specific payload of a lesson.
// Implementations: VideoContent, QuizContent, ExerciseContent, LabContent, ReadingContent.
type LessonContent interface {
	LessonType() LessonType
	isLessonContent()
}

// VideoContent is the payload of a video lesson
type VideoContent struct {
	VideoURL string `json:"videoUrl"`
}

// QuizContent is the payload of a quiz lesson
type QuizContent struct {
	Quiz Quiz `json:"quiz"`
}

// ExerciseContent is the payload of a practical exercise
type ExerciseContent struct {
	Instructions string `json:"instructions"`
}

// LabContent is the payload of a lab session
type LabContent struct {
	Instructions string `json:"instructions"`
}

// ReadingContent is the payload of a reading lesson
type ReadingContent struct {
	Body string `json:"body"`
}

func (VideoContent) LessonType() LessonType    { return LessonTypeVideo }
func (QuizContent) LessonType() LessonType     { return LessonTypeQuiz }
func (ExerciseContent) LessonType() LessonType { return LessonTypeExercise }
func (LabContent) LessonType() LessonType      { return LessonTypeLab }
func (ReadingContent) LessonType() LessonType  { return LessonTypeReading }

func (VideoContent) isLessonContent()    {}
func (QuizContent) isLessonContent()     {}
func (ExerciseContent) isLessonContent() {}
func (LabContent) isLessonContent()      {}
func (ReadingContent) isLessonContent()  {}

// Type returns the lesson type, or an empty string when the lesson has no content
func (l Lesson) Type() LessonType {
	if l.Content == nil {
		return ""
	}
	return l.Content.LessonType()
}

// Quiz returns the quiz definition if the lesson is a quiz
func (l Lesson) Quiz() (*Quiz, bool) {
	c, ok := l.Content.(QuizContent)
	if !ok {
		return nil, false
	}
	return &c.Quiz, true
}

// MarshalJSON adds the derived "type" discriminator next to the lesson fields
func (l Lesson) MarshalJSON() ([]byte, error) {
	type lessonAlias Lesson
	return json.Marshal(struct {
		lessonAlias
		Type LessonType `json:"type"`
	}{
		lessonAlias: lessonAlias(l),
		Type:        l.Type(),
	})
}

// Quiz represents a quiz definition
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question represents a single multiple-choice question.
// The index of the correct answer is never sent to clients.
type Question struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer int      `json:"-"`
	Explanation   string   `json:"-"`
}

// TotalLessons returns the number of lessons across all chapters
func (c *Course) TotalLessons() int {
	total := 0
	for _, ch := range c.Chapters {
		total += len(ch.Lessons)
	}
	return total
}

// TotalTokenReward returns the sum of the chapter token rewards
func (c *Course) TotalTokenReward() int {
	total := 0
	for _, ch := range c.Chapters {
		total += ch.TokenReward
	}
	return total
}

// FindLesson looks a lesson up by its ID
func (c *Course) FindLesson(lessonID int) (*Lesson, bool) {
	for i := range c.Chapters {
		for j := range c.Chapters[i].Lessons {
			if c.Chapters[i].Lessons[j].ID == lessonID {
				return &c.Chapters[i].Lessons[j], true
			}
		}
	}
	return nil, false
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Level            string `json:"level"`
	Duration         string `json:"duration"`
	Image            string `json:"image"`
	Chapters         int    `json:"chapters"`
	TotalLessons     int    `json:"totalLessons"`
	TotalTokenReward int    `json:"totalTokenReward"`
}

// ListItem builds the list representation of the course
func (c *Course) ListItem() CourseListItem {
	return CourseListItem{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Level:            c.Level,
		Duration:         c.Duration,
		Image:            c.Image,
		Chapters:         len(c.Chapters),
		TotalLessons:     c.TotalLessons(),
		TotalTokenReward: c.TotalTokenReward(),
	}
}
