package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/types"
)

var seedTemplatesCommand = &cobra.Command{
	Use:   "seed-templates",
	Short: "Insert or update the built-in CV template catalog",
	Long: `Upserts the standard template catalog into the database. Safe to run
repeatedly; existing templates are updated in place.`,
	RunE: runSeedTemplates,
}

var seedDatabaseURL string

func init() {
	seedTemplatesCommand.Flags().StringVar(&seedDatabaseURL, "database-url", "", "PostgreSQL connection string (defaults to DATABASE_URL)")
	rootCmd.AddCommand(seedTemplatesCommand)
}

// builtinTemplates is the catalog every deployment starts from. Two free
// templates per category, one premium variant each for modern and creative.
func builtinTemplates() []db.Template {
	return []db.Template{
		{ID: "modern-1", Name: "Kigali", Category: types.CategoryModern, IsPremium: false},
		{ID: "modern-2", Name: "Kivu", Category: types.CategoryModern, IsPremium: true},
		{ID: "traditional-1", Name: "Heritage", Category: types.CategoryTraditional, IsPremium: false},
		{ID: "traditional-2", Name: "Classic", Category: types.CategoryTraditional, IsPremium: false},
		{ID: "creative-1", Name: "Imigongo", Category: types.CategoryCreative, IsPremium: false},
		{ID: "creative-2", Name: "Akagera", Category: types.CategoryCreative, IsPremium: true},
		{ID: "minimal-1", Name: "Plain", Category: types.CategoryMinimal, IsPremium: false},
		{ID: "minimal-2", Name: "Whitespace", Category: types.CategoryMinimal, IsPremium: false},
	}
}

func runSeedTemplates(cmd *cobra.Command, _ []string) error {
	databaseURL := seedDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (--database-url or DATABASE_URL)")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for _, template := range builtinTemplates() {
		t := template
		if err := database.UpsertTemplate(ctx, &t); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", t.ID, err)
		}
		fmt.Printf("seeded template %s (%s)\n", t.ID, t.Name)
	}

	fmt.Printf("seeded %d templates\n", len(builtinTemplates()))
	return nil
}
