// Package seed populates the database with the demo accounts and the initial
// public content. Seeding runs once at startup and is idempotent: existing
// rows are never touched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/repositories"
	"github.com/ncc-portal/backend/internal/app/services"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
	"github.com/ncc-portal/backend/internal/pkg/auth"
)

// Seeder populates initial data
type Seeder struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(repos *repositories.Repositories, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repos:  repos,
		logger: logger,
	}
}

// Run seeds demo accounts and content tables. Each concern is seeded
// independently; failures are collected so one bad seed does not block the
// rest, and the caller decides whether the combined error is fatal.
func (s *Seeder) Run(ctx context.Context) error {
	return errors.Join(
		s.ensureDemoAccounts(ctx),
		s.seedEvents(ctx),
		s.seedGallery(ctx),
		s.seedNews(ctx),
		s.seedFAQs(ctx),
	)
}

// ensureDemoAccounts creates the fixed demo accounts if they are absent.
// Unlike the reset endpoint it never deletes anything.
func (s *Seeder) ensureDemoAccounts(ctx context.Context) error {
	for _, acc := range services.DemoAccounts {
		_, err := s.repos.User.GetByEmail(ctx, acc.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("failed to look up demo account %s: %w", acc.Email, err)
		}

		hash, err := auth.HashPassword(acc.Password)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		phone := acc.Phone
		user := &models.User{
			Email:        acc.Email,
			PasswordHash: hash,
			Role:         acc.Role,
			FullName:     acc.FullName,
			Phone:        &phone,
		}
		if err := s.repos.User.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create demo account %s: %w", acc.Email, err)
		}
		s.logger.Info().Str("email", acc.Email).Str("role", string(acc.Role)).Msg("Demo account created")
	}
	return nil
}

func (s *Seeder) seedEvents(ctx context.Context) error {
	count, err := s.repos.Event.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	intPtr := func(v int) *int { return &v }
	events := []*models.Event{
		{
			Title:                "Shooting Competition",
			Description:          "Inter-college shooting competition for all wings",
			EventDate:            time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC),
			Location:             "College Shooting Range",
			RegistrationRequired: true,
			MaxParticipants:      intPtr(50),
		},
		{
			Title:                "Adventure Trek",
			Description:          "Weekend adventure trek to nearby hills",
			EventDate:            time.Date(2024, 4, 20, 6, 0, 0, 0, time.UTC),
			Location:             "Assembly Point - College Gate",
			RegistrationRequired: true,
			MaxParticipants:      intPtr(30),
		},
		{
			Title:       "Blood Donation Camp",
			Description: "Annual blood donation drive",
			EventDate:   time.Date(2024, 4, 25, 10, 0, 0, 0, time.UTC),
			Location:    "College Auditorium",
		},
		{
			Title:       "Cultural Evening",
			Description: "Cultural program and talent show",
			EventDate:   time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			Location:    "College Auditorium",
		},
	}

	for _, e := range events {
		if err := s.repos.Event.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed event %q: %w", e.Title, err)
		}
	}
	s.logger.Info().Int("count", len(events)).Msg("Events seeded")
	return nil
}

func (s *Seeder) seedGallery(ctx context.Context) error {
	count, err := s.repos.Gallery.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count gallery items: %w", err)
	}
	if count > 0 {
		return nil
	}

	strPtr := func(v string) *string { return &v }
	const placeholder = "/placeholder.svg?height=400&width=600"
	items := []*models.GalleryItem{
		{Title: "Annual Training Camp 2024", Description: strPtr("Cadets participating in the annual training camp at Goa"), ImageURL: placeholder, Category: "training"},
		{Title: "Republic Day Parade", Description: strPtr("NCC cadets marching in the Republic Day parade"), ImageURL: placeholder, Category: "parade"},
		{Title: "Adventure Training", Description: strPtr("Rock climbing and adventure activities"), ImageURL: placeholder, Category: "adventure"},
		{Title: "Shooting Competition", Description: strPtr("Inter-college shooting competition winners"), ImageURL: placeholder, Category: "competition"},
		{Title: "Social Service", Description: strPtr("Blood donation camp organized by NCC unit"), ImageURL: placeholder, Category: "service"},
		{Title: "Cultural Program", Description: strPtr("Cultural evening during annual camp"), ImageURL: placeholder, Category: "cultural"},
	}

	for _, g := range items {
		if err := s.repos.Gallery.Create(ctx, g); err != nil {
			return fmt.Errorf("failed to seed gallery item %q: %w", g.Title, err)
		}
	}
	s.logger.Info().Int("count", len(items)).Msg("Gallery seeded")
	return nil
}

func (s *Seeder) seedNews(ctx context.Context) error {
	count, err := s.repos.News.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count news items: %w", err)
	}
	if count > 0 {
		return nil
	}

	strPtr := func(v string) *string { return &v }
	items := []*models.NewsItem{
		{
			Title:     "Enrollment Open for the New Training Year",
			Content:   "Applications for the new NCC training year are now open. Students can apply through the enrollment portal with their college details and preferred wing.",
			Summary:   strPtr("Applications for the new training year are open"),
			Published: true,
		},
		{
			Title:     "Cadets Shine at Republic Day Camp",
			Content:   "Our unit's cadets earned top honours at this year's Republic Day Camp, with two cadets selected for the national contingent.",
			Summary:   strPtr("Two cadets selected for the national contingent"),
			Published: true,
		},
	}

	for _, n := range items {
		if err := s.repos.News.Create(ctx, n); err != nil {
			return fmt.Errorf("failed to seed news item %q: %w", n.Title, err)
		}
	}
	s.logger.Info().Int("count", len(items)).Msg("News seeded")
	return nil
}

func (s *Seeder) seedFAQs(ctx context.Context) error {
	count, err := s.repos.FAQ.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count faqs: %w", err)
	}
	if count > 0 {
		return nil
	}

	faqs := []*models.FAQ{
		{
			Question:     "What is the eligibility criteria for NCC enrollment?",
			Answer:       "Students must be enrolled in a recognized educational institution, be between 13-26 years of age, and have good physical and mental health.",
			Category:     "enrollment",
			DisplayOrder: 1,
		},
		{
			Question:     "How long is the NCC training period?",
			Answer:       "The basic NCC training is for 2-3 years depending on the certificate level (A, B, or C certificate).",
			Category:     "training",
			DisplayOrder: 2,
		},
		{
			Question:     "What are the benefits of joining NCC?",
			Answer:       "NCC provides leadership training, character development, adventure activities, and preference in government job selections.",
			Category:     "benefits",
			DisplayOrder: 3,
		},
		{
			Question:     "Can I change my wing after enrollment?",
			Answer:       "Wing changes are generally not allowed after enrollment. However, in exceptional cases, it may be considered by the commanding officer.",
			Category:     "enrollment",
			DisplayOrder: 4,
		},
		{
			Question:     "What documents are required for enrollment?",
			Answer:       "You need academic certificates, birth certificate, medical fitness certificate, passport size photographs, and parent consent form.",
			Category:     "documents",
			DisplayOrder: 5,
		},
	}

	for _, f := range faqs {
		if err := s.repos.FAQ.Create(ctx, f); err != nil {
			return fmt.Errorf("failed to seed faq %q: %w", f.Question, err)
		}
	}
	s.logger.Info().Int("count", len(faqs)).Msg("FAQs seeded")
	return nil
}
