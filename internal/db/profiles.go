package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const profileColumns = `id, email, COALESCE(full_name, ''), subscription_tier, password_hash, created_at, updated_at`

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// ErrDuplicateEmail is returned when an email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.SubscriptionTier, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

// CreateProfile inserts a new account with a free subscription tier.
func (db *DB) CreateProfile(ctx context.Context, email, passwordHash, fullName string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (email, full_name, subscription_tier, password_hash)
		 VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING `+profileColumns,
		email, fullName, TierFree, passwordHash,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.SubscriptionTier, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

// GetProfileByEmail retrieves a profile by email, (nil, nil) when absent.
func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
	return scanProfile(row)
}

// GetProfileByID retrieves a profile by ID, (nil, nil) when absent.
func (db *DB) GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

// UpdateProfileName sets the display name.
func (db *DB) UpdateProfileName(ctx context.Context, id uuid.UUID, fullName string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profiles SET full_name = NULLIF($1, ''), updated_at = NOW() WHERE id = $2`,
		fullName, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}
	return nil
}

// UpdateProfilePassword replaces the stored password hash.
func (db *DB) UpdateProfilePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profiles SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile password: %w", err)
	}
	return nil
}

// UpdateSubscriptionTier moves a profile between free and premium.
func (db *DB) UpdateSubscriptionTier(ctx context.Context, id uuid.UUID, tier string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET subscription_tier = $1, updated_at = NOW() WHERE id = $2`,
		tier, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}

// ProfileFilters holds optional filters for listing profiles.
type ProfileFilters struct {
	Email string
	Tier  string
	Limit int
}

// ListProfiles retrieves profiles with optional filters, newest first.
func (db *DB) ListProfiles(ctx context.Context, filters ProfileFilters) ([]Profile, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Email != "" {
		query += fmt.Sprintf(" AND email ILIKE $%d", argNum)
		args = append(args, "%"+filters.Email+"%")
		argNum++
	}
	if filters.Tier != "" {
		query += fmt.Sprintf(" AND subscription_tier = $%d", argNum)
		args = append(args, filters.Tier)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.SubscriptionTier, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// DeleteProfile removes an account and, via cascade, its CVs and letters.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}
