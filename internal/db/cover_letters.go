package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const coverLetterColumns = `id, user_id, title, company_name, position, content, created_at, updated_at`

// CreateCoverLetter stores a generated letter.
func (db *DB) CreateCoverLetter(ctx context.Context, userID uuid.UUID, title, companyName, position, content string) (*CoverLetter, error) {
	var cl CoverLetter
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cover_letters (user_id, title, company_name, position, content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+coverLetterColumns,
		userID, title, companyName, position, content,
	).Scan(&cl.ID, &cl.UserID, &cl.Title, &cl.CompanyName, &cl.Position, &cl.Content, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover letter: %w", err)
	}
	return &cl, nil
}

// GetCoverLetter retrieves one letter owned by userID, (nil, nil) when absent.
func (db *DB) GetCoverLetter(ctx context.Context, userID, letterID uuid.UUID) (*CoverLetter, error) {
	var cl CoverLetter
	err := db.pool.QueryRow(ctx,
		`SELECT `+coverLetterColumns+` FROM cover_letters WHERE id = $1 AND user_id = $2`,
		letterID, userID,
	).Scan(&cl.ID, &cl.UserID, &cl.Title, &cl.CompanyName, &cl.Position, &cl.Content, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}
	return &cl, nil
}

// ListCoverLetters retrieves the user's letters, most recently updated first.
func (db *DB) ListCoverLetters(ctx context.Context, userID uuid.UUID, limit int) ([]CoverLetter, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+coverLetterColumns+` FROM cover_letters
		 WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cover letters: %w", err)
	}
	defer rows.Close()

	var letters []CoverLetter
	for rows.Next() {
		var cl CoverLetter
		if err := rows.Scan(&cl.ID, &cl.UserID, &cl.Title, &cl.CompanyName, &cl.Position, &cl.Content, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cover letter: %w", err)
		}
		letters = append(letters, cl)
	}
	return letters, nil
}

// DeleteCoverLetter removes one of the user's letters.
func (db *DB) DeleteCoverLetter(ctx context.Context, userID, letterID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`, letterID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cover letter %s: %w", letterID, ErrNotFound)
	}
	return nil
}

// CountCoverLetters returns how many letters the user has saved.
func (db *DB) CountCoverLetters(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cover_letters WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cover letters: %w", err)
	}
	return count, nil
}
