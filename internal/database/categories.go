package database

import (
	"context"
	"sklep-api/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateCategory(ctx context.Context, categoryName string) (*models.Category, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (category_id, category_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING category_id, category_name, created_at, updated_at
	`
	now := time.Now()

	var category models.Category
	err := s.pool.QueryRow(ctx, query, uuid.New(), categoryName, now, now).Scan(
		&category.CategoryID,
		&category.CategoryName,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *Store) ListCategories(ctx context.Context, limit, offset int64) ([]models.Category, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT category_id, category_name, created_at, updated_at
		FROM categories
		ORDER BY category_name
		OFFSET $1
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.CategoryID,
			&category.CategoryName,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total)
	return total, err
}

func (s *Store) UpdateCategory(ctx context.Context, categoryID uuid.UUID, categoryName string) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories
		SET category_name = $1, updated_at = $2
		WHERE category_id = $3
	`
	tag, err := s.pool.Exec(ctx, query, categoryName, time.Now(), categoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	return err
}
