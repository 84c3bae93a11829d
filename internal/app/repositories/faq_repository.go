package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/pkg/logger"
)

// FAQRepository handles FAQ database operations
type FAQRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all FAQs in display order
func (r *FAQRepository) List(ctx context.Context) ([]*models.FAQ, error) {
	sql, args, err := r.sb.Select("id", "question", "answer", "category", "display_order", "created_at").
		From("faqs").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faqs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faqs")
		return nil, fmt.Errorf("error querying faqs: %w", err)
	}
	defer rows.Close()

	faqs := []*models.FAQ{}
	for rows.Next() {
		f := &models.FAQ{}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.DisplayOrder, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning faq row: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq rows: %w", err)
	}
	return faqs, nil
}

// Count returns the number of stored FAQs
func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting faqs: %w", err)
	}
	return count, nil
}

// Create inserts a FAQ
func (r *FAQRepository) Create(ctx context.Context, f *models.FAQ) error {
	sql, args, err := r.sb.Insert("faqs").
		Columns("question", "answer", "category", "display_order").
		Values(f.Question, f.Answer, f.Category, f.DisplayOrder).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faq query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		return fmt.Errorf("error creating faq: %w", err)
	}
	return nil
}
