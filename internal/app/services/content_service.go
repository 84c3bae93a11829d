package services

import (
	"context"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/repositories"
)

// ContentService serves the public read-only content lists. It is a thin
// collaborator of presentation; the auth/enrollment core never depends on it.
type ContentService interface {
	Events(ctx context.Context) ([]*models.Event, error)
	Gallery(ctx context.Context) ([]*models.GalleryItem, error)
	News(ctx context.Context) ([]*models.NewsItem, error)
	FAQs(ctx context.Context) ([]*models.FAQ, error)
}

type contentService struct {
	events  *repositories.EventRepository
	gallery *repositories.GalleryRepository
	news    *repositories.NewsRepository
	faqs    *repositories.FAQRepository
}

// NewContentService creates a new ContentService
func NewContentService(repos *repositories.Repositories) ContentService {
	return &contentService{
		events:  repos.Event,
		gallery: repos.Gallery,
		news:    repos.News,
		faqs:    repos.FAQ,
	}
}

func (s *contentService) Events(ctx context.Context) ([]*models.Event, error) {
	return s.events.List(ctx)
}

func (s *contentService) Gallery(ctx context.Context) ([]*models.GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *contentService) News(ctx context.Context) ([]*models.NewsItem, error) {
	return s.news.ListPublished(ctx)
}

func (s *contentService) FAQs(ctx context.Context) ([]*models.FAQ, error) {
	return s.faqs.List(ctx)
}
