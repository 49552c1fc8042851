package database

import (
	"context"
	"errors"
	"sklep-api/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUsernameTaken = errors.New("username already taken")

// Usernames are stored lower-cased, lookups fold case the same way.

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`
	var account models.Account

	err := s.pool.QueryRow(ctx, query, strings.ToLower(username)).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.FullName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account models.Account

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.FullName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

type CreateAccountParams struct {
	Username     string
	PasswordHash string
	FullName     string
}

func (s *Store) CreateAccount(ctx context.Context, arg CreateAccountParams) (*models.Account, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO accounts (id, username, password_hash, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, password_hash, full_name, created_at, updated_at
	`
	now := time.Now()

	row := s.pool.QueryRow(ctx, query,
		uuid.New(),
		strings.ToLower(arg.Username),
		arg.PasswordHash,
		arg.FullName,
		now,
		now,
	)

	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.FullName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &account, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}
