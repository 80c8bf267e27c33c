// Package main provides the entry point for the AndikaCV server and tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "andikacv",
	Short: "AndikaCV CV and cover letter builder",
	Long:  "AndikaCV builds CVs through a guided wizard, generates cover letters from fixed skeletons, and exports PDF documents in English or Kinyarwanda via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
