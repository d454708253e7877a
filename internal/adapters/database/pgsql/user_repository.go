package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
)

const pgUniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// CreateUserWithPreference inserts the user row and their default preference row
// inside a single database transaction. A duplicate username maps to ErrDuplicate.
func (r *PgxUserRepository) CreateUserWithPreference(ctx context.Context, user domain.User, pref domain.UserPreference) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	userQuery := `
		INSERT INTO users (user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, userQuery,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: username '%s' taken", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	prefQuery := `
		INSERT INTO user_preferences (user_id, preferred_input_currency, preferred_output_currency, decimal_precision, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, prefQuery,
		pref.UserID,
		pref.PreferredInputCurrency,
		pref.PreferredOutputCurrency,
		pref.DecimalPrecision,
		pref.CreatedAt,
		pref.CreatedBy,
		pref.LastUpdatedAt,
		pref.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert default preference: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by, deleted_at, refresh_token_hash, refresh_token_expiry_time
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, userID), fmt.Sprintf("ID %s", userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by, deleted_at, refresh_token_hash, refresh_token_expiry_time
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username), fmt.Sprintf("username %s", username))
}

func (r *PgxUserRepository) scanUser(row pgx.Row, descriptor string) (*domain.User, error) {
	var user domain.User
	var refreshHash sql.NullString
	var refreshExpiry sql.NullTime

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
		&user.DeletedAt,
		&refreshHash,
		&refreshExpiry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", descriptor, err)
	}

	if refreshHash.Valid {
		user.RefreshTokenHash = refreshHash.String
	}
	if refreshExpiry.Valid {
		expiry := refreshExpiry.Time
		user.RefreshTokenExpiryTime = &expiry
	}
	return &user, nil
}

// UpdateRefreshToken stores (or clears) the hash and expiry of the user's current
// refresh token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = NULLIF($2, ''), refresh_token_expiry_time = $3, last_updated_at = $4, last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID, tokenHash, expiresAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
