// Package models defines the persisted record types of the coursebay
// platform. Column names follow the schema package; nested course content
// and order line items are serialized to JSON text columns.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is an account row. The bootstrap administrator's password is
// stored in clear text; see the schema package for the seeding rules.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// Lesson is a single unit of course content.
type Lesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Module groups lessons inside a course.
type Module struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is a catalog entry. Modules lives in the modulesData text column
// as JSON.
type Course struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Category    string    `db:"category"`
	Thumbnail   string    `db:"thumbnail"`
	Modules     []Module  `db:"-"`
	CreatedAt   time.Time `db:"created_at"`
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	CourseID int64   `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
}

// Order is a purchase. Items lives in the items text column as JSON.
type Order struct {
	ID        int64       `db:"id"`
	UserID    int64       `db:"user_id"`
	Total     float64     `db:"total"`
	Status    string      `db:"status"`
	Items     []OrderItem `db:"-"`
	CreatedAt time.Time   `db:"created_at"`
}

// Coupon is a discount code.
type Coupon struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	Discount  float64   `db:"discount"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Resource is a downloadable attachment belonging to a course.
type Resource struct {
	ID        int64     `db:"id"`
	CourseID  int64     `db:"course_id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

// Setting is a key/value configuration row.
type Setting struct {
	ID    int64  `db:"id"`
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Enrollment links a user to a course.
type Enrollment struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	CourseID   int64     `db:"course_id"`
	Progress   int       `db:"progress"`
	EnrolledAt time.Time `db:"enrolled_at"`
}

// EncodeModules serializes a module hierarchy for the modulesData column.
func EncodeModules(modules []Module) (string, error) {
	data, err := json.Marshal(modules)
	if err != nil {
		return "", fmt.Errorf("failed to encode modules: %w", err)
	}
	return string(data), nil
}

// DecodeModules parses the modulesData column. Empty input yields nil.
func DecodeModules(data string) ([]Module, error) {
	if data == "" {
		return nil, nil
	}
	var modules []Module
	if err := json.Unmarshal([]byte(data), &modules); err != nil {
		return nil, fmt.Errorf("failed to decode modules: %w", err)
	}
	return modules, nil
}

// EncodeItems serializes order line items for the items column.
func EncodeItems(items []OrderItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode order items: %w", err)
	}
	return string(data), nil
}

// DecodeItems parses the items column. Empty input yields nil.
func DecodeItems(data string) ([]OrderItem, error) {
	if data == "" {
		return nil, nil
	}
	var items []OrderItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return items, nil
}
