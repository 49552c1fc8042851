package database

import (
	"context"
	"errors"
	"sklep-api/internal/models"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrCategoryNotFound = errors.New("category does not exist")

type CreateProductParams struct {
	ProductID    string
	ProductName  string
	PriceCents   int64
	Stock        int32
	SKU          string
	CategoryID   *string
	ProductImage *string
}

func (s *Store) CreateProduct(ctx context.Context, arg CreateProductParams) (*models.Product, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (product_id, product_name, price_cents, stock, sku, category_id, product_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING product_id, product_name, price_cents, stock, sku, category_id, product_image, created_at, updated_at
	`
	now := time.Now()

	row := s.pool.QueryRow(ctx, query,
		arg.ProductID,
		arg.ProductName,
		arg.PriceCents,
		arg.Stock,
		arg.SKU,
		arg.CategoryID,
		arg.ProductImage,
		now,
		now,
	)

	var product models.Product
	err := row.Scan(
		&product.ProductID,
		&product.ProductName,
		&product.PriceCents,
		&product.Stock,
		&product.SKU,
		&product.CategoryID,
		&product.ProductImage,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (s *Store) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT
			p.product_id, p.product_name, p.price_cents, p.stock, p.sku,
			p.category_id, c.category_name, p.product_image, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE p.product_id = $1
	`
	var product models.Product

	err := s.pool.QueryRow(ctx, query, productID).Scan(
		&product.ProductID,
		&product.ProductName,
		&product.PriceCents,
		&product.Stock,
		&product.SKU,
		&product.CategoryID,
		&product.CategoryName,
		&product.ProductImage,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, limit, offset int64) ([]models.Product, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT
			p.product_id, p.product_name, p.price_cents, p.stock, p.sku,
			p.category_id, c.category_name, p.product_image, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.category_id
		ORDER BY p.product_id
		OFFSET $1
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ProductID,
			&product.ProductName,
			&product.PriceCents,
			&product.Stock,
			&product.SKU,
			&product.CategoryID,
			&product.CategoryName,
			&product.ProductImage,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	return total, err
}

type UpdateProductParams struct {
	ProductName  *string
	PriceCents   *int64
	Stock        *int32
	SKU          *string
	CategoryID   *string
	ProductImage *string
}

// UpdateProduct applies only the fields that are present; absent fields keep
// their stored values.
func (s *Store) UpdateProduct(ctx context.Context, productID string, arg UpdateProductParams) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET
			product_name = COALESCE($1, product_name),
			price_cents = COALESCE($2, price_cents),
			stock = COALESCE($3, stock),
			sku = COALESCE($4, sku),
			category_id = COALESCE($5, category_id),
			product_image = COALESCE($6, product_image),
			updated_at = $7
		WHERE product_id = $8
	`
	tag, err := s.pool.Exec(ctx, query,
		arg.ProductName,
		arg.PriceCents,
		arg.Stock,
		arg.SKU,
		arg.CategoryID,
		arg.ProductImage,
		time.Now(),
		productID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCategoryNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	return err
}
