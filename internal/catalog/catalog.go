// Package catalog holds the static course and store reference data
package catalog

import (
	"context"
	"fmt"

	"github.com/blockseblock/backend/internal/models"
)

// Token rewards per lesson type
const (
	videoReward    = 20
	quizReward     = 40
	exerciseReward = 50
	labReward      = 60
	readingReward  = 15
)

// Catalog serves read-only course and store data
type Catalog struct {
	courses []models.Course
	items   []models.StoreItem
}

// New creates a catalog from the given data
func New(courses []models.Course, items []models.StoreItem) *Catalog {
	return &Catalog{courses: courses, items: items}
}

// Default creates a catalog with the platform's built-in courses and swag store
func Default() *Catalog {
	return New(defaultCourses(), defaultStoreItems())
}

// GetCourses returns all courses in catalog order
func (c *Catalog) GetCourses(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, len(c.courses))
	copy(courses, c.courses)
	return courses, nil
}

// GetCourseByID retrieves a course by its ID
func (c *Catalog) GetCourseByID(ctx context.Context, id int) (*models.Course, error) {
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := c.courses[i]
			return &course, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", models.ErrCourseNotFound, id)
}

// GetStoreItems returns all store items
func (c *Catalog) GetStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	items := make([]models.StoreItem, len(c.items))
	copy(items, c.items)
	return items, nil
}

// GetStoreItemByID retrieves a store item by its ID
func (c *Catalog) GetStoreItemByID(ctx context.Context, id int) (*models.StoreItem, error) {
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", models.ErrItemNotFound, id)
}
