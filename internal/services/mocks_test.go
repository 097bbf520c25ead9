package services

import (
	"context"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/rewards"
)

// mockCatalog is a mock implementation of CourseCatalog
type mockCatalog struct {
	courses []models.Course
	items   []models.StoreItem
	err     error
}

func (m *mockCatalog) GetCourses(ctx context.Context) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCatalog) GetCourseByID(ctx context.Context, id int) (*models.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			return &m.courses[i], nil
		}
	}
	return nil, models.ErrCourseNotFound
}

func (m *mockCatalog) GetStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockCatalog) GetStoreItemByID(ctx context.Context, id int) (*models.StoreItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, models.ErrItemNotFound
}

// mockLearnerRepository is a mock implementation of LearnerRepository
type mockLearnerRepository struct {
	learners map[string]*rewards.Learner
	now      time.Time
	calls    int
}

func newMockLearnerRepository() *mockLearnerRepository {
	return &mockLearnerRepository{
		learners: make(map[string]*rewards.Learner),
		now:      time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockLearnerRepository) Update(ctx context.Context, principal string, fn func(*rewards.Learner) error) error {
	m.calls++
	if principal == "" {
		return models.ErrMissingPrincipal
	}
	l, ok := m.learners[principal]
	if !ok {
		l = rewards.NewLearner(principal, time.Second, func() time.Time { return m.now })
		m.learners[principal] = l
	}
	return fn(l)
}

// mockRecorder records reward and redemption notifications
type mockRecorder struct {
	credited []models.LedgerEntry
	redeemed []models.StoreItem
}

func (m *mockRecorder) TokensCredited(entries []models.LedgerEntry) {
	m.credited = append(m.credited, entries...)
}

func (m *mockRecorder) ItemRedeemed(item models.StoreItem) {
	m.redeemed = append(m.redeemed, item)
}

// newTestCatalog builds one course with a video and a two-question quiz.
// The chapter reward is 100, so completing the course is worth 10 tokens.
func newTestCatalog() *mockCatalog {
	return &mockCatalog{
		courses: []models.Course{
			{
				ID:    1,
				Title: "Blockchain Fundamentals",
				Chapters: []models.Chapter{
					{
						ID:          1,
						Title:       "Introduction",
						TokenReward: 100,
						Lessons: []models.Lesson{
							{ID: 1, Title: "What is Blockchain?", TokenReward: 20, Content: models.VideoContent{VideoURL: "/uploads/intro.mp4"}},
							{ID: 2, Title: "Quiz: Blockchain Basics", TokenReward: 40, Content: models.QuizContent{Quiz: models.Quiz{
								Title: "Basics",
								Questions: []models.Question{
									{Question: "What is a blockchain?", Answers: []string{"A coin", "A distributed ledger"}, CorrectAnswer: 1},
									{Question: "Who introduced Bitcoin?", Answers: []string{"Satoshi Nakamoto", "Vitalik Buterin"}, CorrectAnswer: 0, Explanation: "The 2008 whitepaper"},
								},
							}}},
						},
					},
				},
			},
		},
		items: []models.StoreItem{
			{ID: 1, Name: "Sticker Pack", TokenCost: 50, Category: "accessories"},
			{ID: 2, Name: "Hoodie", TokenCost: 1200, Category: "apparel"},
		},
	}
}
