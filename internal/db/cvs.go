package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gedeon/andikacv/internal/schemas"
)

// CreateCV stores a new CV after validating the document blob.
func (db *DB) CreateCV(ctx context.Context, userID uuid.UUID, title, templateID string, data json.RawMessage) (*CV, error) {
	if err := schemas.ValidateCVDocument(data); err != nil {
		return nil, fmt.Errorf("invalid cv document: %w", err)
	}

	var cv CV
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cvs (user_id, title, template_id, data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, template_id, data, created_at, updated_at`,
		userID, title, templateID, data,
	).Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.TemplateID, &cv.Data, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return &cv, nil
}

// GetCV retrieves one CV owned by userID, (nil, nil) when absent.
// Scoping the query to the owner keeps one user from reading another's
// documents by guessing IDs.
func (db *DB) GetCV(ctx context.Context, userID, cvID uuid.UUID) (*CV, error) {
	var cv CV
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, template_id, data, created_at, updated_at
		 FROM cvs WHERE id = $1 AND user_id = $2`,
		cvID, userID,
	).Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.TemplateID, &cv.Data, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}
	return &cv, nil
}

// CVFilters holds optional filters for listing CVs.
type CVFilters struct {
	Title      string
	TemplateID string
	Limit      int
}

// ListCVs retrieves the user's CV summaries, most recently updated first.
func (db *DB) ListCVs(ctx context.Context, userID uuid.UUID, filters CVFilters) ([]CVSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, title, template_id, created_at, updated_at
		FROM cvs WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argNum)
		args = append(args, "%"+filters.Title+"%")
		argNum++
	}
	if filters.TemplateID != "" {
		query += fmt.Sprintf(" AND template_id = $%d", argNum)
		args = append(args, filters.TemplateID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	var cvs []CVSummary
	for rows.Next() {
		var cv CVSummary
		if err := rows.Scan(&cv.ID, &cv.Title, &cv.TemplateID, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cv: %w", err)
		}
		cvs = append(cvs, cv)
	}
	return cvs, nil
}

// UpdateCV replaces title, template and document after validating the blob.
func (db *DB) UpdateCV(ctx context.Context, userID, cvID uuid.UUID, title, templateID string, data json.RawMessage) (*CV, error) {
	if err := schemas.ValidateCVDocument(data); err != nil {
		return nil, fmt.Errorf("invalid cv document: %w", err)
	}

	var cv CV
	err := db.pool.QueryRow(ctx,
		`UPDATE cvs SET title = $1, template_id = $2, data = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5
		 RETURNING id, user_id, title, template_id, data, created_at, updated_at`,
		title, templateID, data, cvID, userID,
	).Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.TemplateID, &cv.Data, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update cv: %w", err)
	}
	return &cv, nil
}

// DeleteCV removes one of the user's CVs.
func (db *DB) DeleteCV(ctx context.Context, userID, cvID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cvs WHERE id = $1 AND user_id = $2`, cvID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv %s: %w", cvID, ErrNotFound)
	}
	return nil
}

// CountCVs returns how many CVs the user has saved.
func (db *DB) CountCVs(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cvs WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cvs: %w", err)
	}
	return count, nil
}
