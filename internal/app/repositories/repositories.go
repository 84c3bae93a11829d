package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over the shared connection pool
type Repositories struct {
	User       *UserRepository
	Enrollment *EnrollmentRepository
	Event      *EventRepository
	Gallery    *GalleryRepository
	News       *NewsRepository
	FAQ        *FAQRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Enrollment: NewEnrollmentRepository(db),
		Event:      NewEventRepository(db),
		Gallery:    NewGalleryRepository(db),
		News:       NewNewsRepository(db),
		FAQ:        NewFAQRepository(db),
	}
}
