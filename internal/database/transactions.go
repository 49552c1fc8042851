package database

import (
	"context"
	"encoding/json"
	"sklep-api/internal/models"
	"time"

	"github.com/google/uuid"
)

type CreateTransactionParams struct {
	TotalPriceCents int64
	ItemCount       int32
	Items           []models.TransactionItem
}

func (s *Store) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (*models.Transaction, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(arg.Items)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO transactions (transaction_id, transaction_date, total_price_cents, item_count, transaction_items)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id, transaction_date, total_price_cents, item_count, transaction_items
	`
	row := s.pool.QueryRow(ctx, query,
		uuid.New(),
		time.Now(),
		arg.TotalPriceCents,
		arg.ItemCount,
		itemsJSON,
	)

	var transaction models.Transaction
	err = row.Scan(
		&transaction.TransactionID,
		&transaction.TransactionDate,
		&transaction.TotalPriceCents,
		&transaction.ItemCount,
		&transaction.TransactionItems,
	)
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT transaction_id, transaction_date, total_price_cents, item_count, transaction_items
		FROM transactions
		ORDER BY transaction_date DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var transaction models.Transaction
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.TransactionDate,
			&transaction.TotalPriceCents,
			&transaction.ItemCount,
			&transaction.TransactionItems,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}
