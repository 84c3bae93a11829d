package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/pkg/logger"
)

// NewsRepository handles news database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListPublished returns published news items, newest first
func (r *NewsRepository) ListPublished(ctx context.Context) ([]*models.NewsItem, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "summary", "image_url",
		"published", "created_at", "updated_at").
		From("news").
		Where(squirrel.Eq{"published": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying news")
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	items := []*models.NewsItem{}
	for rows.Next() {
		n := &models.NewsItem{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Summary, &n.ImageURL,
			&n.Published, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}
	return items, nil
}

// Count returns the number of stored news items
func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting news items: %w", err)
	}
	return count, nil
}

// Create inserts a news item
func (r *NewsRepository) Create(ctx context.Context, n *models.NewsItem) error {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "content", "summary", "image_url", "published").
		Values(n.Title, n.Content, n.Summary, n.ImageURL, n.Published).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("error creating news item: %w", err)
	}
	return nil
}
