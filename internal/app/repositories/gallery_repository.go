package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/pkg/logger"
)

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all gallery items, newest first
func (r *GalleryRepository) List(ctx context.Context) ([]*models.GalleryItem, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "image_url", "category", "created_at").
		From("gallery").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying gallery")
		return nil, fmt.Errorf("error querying gallery: %w", err)
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		g := &models.GalleryItem{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}
	return items, nil
}

// Count returns the number of stored gallery items
func (r *GalleryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gallery`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting gallery items: %w", err)
	}
	return count, nil
}

// Create inserts a gallery item
func (r *GalleryRepository) Create(ctx context.Context, g *models.GalleryItem) error {
	sql, args, err := r.sb.Insert("gallery").
		Columns("title", "description", "image_url", "category").
		Values(g.Title, g.Description, g.ImageURL, g.Category).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create gallery query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("error creating gallery item: %w", err)
	}
	return nil
}
