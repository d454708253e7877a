package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
)

type PgxPreferenceRepository struct {
	db *pgxpool.Pool
}

func newPgxPreferenceRepository(db *pgxpool.Pool) portsrepo.PreferenceRepository {
	return &PgxPreferenceRepository{db: db}
}

var _ portsrepo.PreferenceRepository = (*PgxPreferenceRepository)(nil)

// SavePreference upserts the user's preference row. user_id is the primary key so
// each user has at most one row.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.UserPreference) error {
	query := `
		INSERT INTO user_preferences (user_id, preferred_input_currency, preferred_output_currency, decimal_precision, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_input_currency = EXCLUDED.preferred_input_currency,
			preferred_output_currency = EXCLUDED.preferred_output_currency,
			decimal_precision = EXCLUDED.decimal_precision,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
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
		return fmt.Errorf("failed to save preference for user %s: %w", pref.UserID, err)
	}
	return nil
}

// FindPreferenceByUserID retrieves the preference row for a user.
func (r *PgxPreferenceRepository) FindPreferenceByUserID(ctx context.Context, userID string) (*domain.UserPreference, error) {
	query := `
		SELECT user_id, preferred_input_currency, preferred_output_currency, decimal_precision, created_at, created_by, last_updated_at, last_updated_by
		FROM user_preferences
		WHERE user_id = $1;
	`
	var pref domain.UserPreference
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&pref.UserID,
		&pref.PreferredInputCurrency,
		&pref.PreferredOutputCurrency,
		&pref.DecimalPrecision,
		&pref.CreatedAt,
		&pref.CreatedBy,
		&pref.LastUpdatedAt,
		&pref.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preference for user %s: %w", userID, err)
	}

	return &pref, nil
}
