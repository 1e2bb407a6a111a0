package schema

import (
	"context"
	"fmt"

	"github.com/coursebay/coursebay/models"
	"github.com/coursebay/coursebay/store"
)

// Seed defaults. The bootstrap password is stored and compared in clear
// text. That is a known weakness carried by existing databases: changing
// the storage format invalidates every stored credential and needs an
// explicit migration, so it must not be swapped out silently here.
const (
	AdminEmail    = "admin@coursebay.local"
	adminName     = "Administrator"
	adminPassword = "admin123"
	adminRole     = "admin"

	MembershipPriceKey     = "membership_price"
	MembershipOfferKey     = "membership_offer"
	defaultMembershipPrice = "999"
)

// Seed inserts baseline configuration, the bootstrap administrator and
// sample catalog entries. The three actions are independent and order
// insensitive; each is guarded by an existence check and inserts at most
// once per fresh database. There is no transaction around the companion
// inserts: a crash in between leaves a partial seed that the guards
// complete on the next start.
func Seed(ctx context.Context, st store.Store) error {
	if err := seedSettings(ctx, st); err != nil {
		return err
	}
	if err := seedAdmin(ctx, st); err != nil {
		return err
	}
	if err := seedCourses(ctx, st); err != nil {
		return err
	}
	return nil
}

func seedSettings(ctx context.Context, st store.Store) error {
	row, err := st.FetchOne(ctx, "SELECT value FROM settings WHERE key = ?", MembershipPriceKey)
	if err != nil {
		return fmt.Errorf("settings lookup failed: %w", err)
	}
	if row != nil {
		return nil
	}

	if _, err := st.Execute(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)",
		MembershipPriceKey, defaultMembershipPrice); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if _, err := st.Execute(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)",
		MembershipOfferKey, ""); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, st store.Store) error {
	row, err := st.FetchOne(ctx, "SELECT id FROM users WHERE email = ?", AdminEmail)
	if err != nil {
		return fmt.Errorf("admin lookup failed: %w", err)
	}
	if row != nil {
		return nil
	}

	if _, err := st.Execute(ctx, "INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
		adminName, AdminEmail, adminPassword, adminRole); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}

func seedCourses(ctx context.Context, st store.Store) error {
	row, err := st.FetchOne(ctx, "SELECT COUNT(*) AS total FROM courses")
	if err != nil {
		return fmt.Errorf("catalog count failed: %w", err)
	}

	// The networked engine can hand the count back as a numeric string.
	total, ok := store.AsInt64(row["total"])
	if !ok {
		return fmt.Errorf("catalog count is not numeric: %v", row["total"])
	}
	if total > 0 {
		return nil
	}

	for _, course := range sampleCourses() {
		modulesData, err := models.EncodeModules(course.Modules)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		_, err = st.Execute(ctx,
			`INSERT INTO courses (title, description, price, category, "modulesData") VALUES (?, ?, ?, ?, ?)`,
			course.Title, course.Description, course.Price, course.Category, modulesData)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return nil
}

// sampleCourses returns the two illustrative catalog entries inserted
// into an empty database.
func sampleCourses() []models.Course {
	return []models.Course{
		{
			Title:       "Web Development Fundamentals",
			Description: "HTML, CSS and JavaScript from a blank editor to a deployed site.",
			Price:       49,
			Category:    "development",
			Modules: []models.Module{
				{
					Title: "Getting Started",
					Lessons: []models.Lesson{
						{Title: "How the Web Works", Duration: "12:30"},
						{Title: "Setting Up Your Editor", Duration: "08:45"},
					},
				},
				{
					Title: "Building Pages",
					Lessons: []models.Lesson{
						{Title: "HTML Structure", Duration: "15:20"},
						{Title: "Styling with CSS", Duration: "18:10"},
					},
				},
			},
		},
		{
			Title:       "Digital Marketing Essentials",
			Description: "Plan, run and measure campaigns across search and social.",
			Price:       39,
			Category:    "marketing",
			Modules: []models.Module{
				{
					Title: "Foundations",
					Lessons: []models.Lesson{
						{Title: "Understanding Your Audience", Duration: "10:05"},
						{Title: "Channels and Budgets", Duration: "14:40"},
					},
				},
			},
		},
	}
}
