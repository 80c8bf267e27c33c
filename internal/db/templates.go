package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const templateColumns = `id, name, category, is_premium, COALESCE(preview_url, ''), created_at`

// TemplateFilters holds optional filters for listing templates.
type TemplateFilters struct {
	Category    string
	PremiumOnly bool
	FreeOnly    bool
}

// ListTemplates retrieves templates ordered by creation time.
func (db *DB) ListTemplates(ctx context.Context, filters TemplateFilters) ([]Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.PremiumOnly {
		query += " AND is_premium = TRUE"
	}
	if filters.FreeOnly {
		query += " AND is_premium = FALSE"
	}

	query += " ORDER BY created_at ASC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.IsPremium, &t.PreviewURL, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// GetTemplate retrieves a template by ID, (nil, nil) when absent.
func (db *DB) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var t Template
	err := db.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Category, &t.IsPremium, &t.PreviewURL, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}

// UpsertTemplate inserts or updates a template record. Used by the admin
// API and the seed command.
func (db *DB) UpsertTemplate(ctx context.Context, t *Template) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO templates (id, name, category, is_premium, preview_url)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 ON CONFLICT (id) DO UPDATE SET name = $2, category = $3, is_premium = $4, preview_url = NULLIF($5, '')`,
		t.ID, t.Name, t.Category, t.IsPremium, t.PreviewURL,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template.
func (db *DB) DeleteTemplate(ctx context.Context, id string) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}
