package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gedeon/andikacv/internal/coverletter"
	"github.com/gedeon/andikacv/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from the command line",
	Long: `Fills one of the built-in cover letter skeletons (modern, traditional,
creative, minimal) with the given fields and writes the result to a text file
or stdout. No account or database is needed.`,
	RunE: runGenerate,
}

var (
	genTemplate   string
	genJobTitle   string
	genCompany    string
	genName       string
	genEmail      string
	genPhone      string
	genSkills     string
	genExperience string
	genMotivation string
	genOutput     string
	genList       bool
)

func init() {
	generateCommand.Flags().StringVarP(&genTemplate, "template", "t", "modern", "Skeleton to use (modern, traditional, creative, minimal)")
	generateCommand.Flags().StringVar(&genJobTitle, "job-title", "", "Position applied for")
	generateCommand.Flags().StringVarP(&genCompany, "company", "c", "", "Company name")
	generateCommand.Flags().StringVarP(&genName, "name", "n", "", "Applicant name")
	generateCommand.Flags().StringVar(&genEmail, "email", "", "Applicant email")
	generateCommand.Flags().StringVar(&genPhone, "phone", "", "Applicant phone")
	generateCommand.Flags().StringVar(&genSkills, "skills", "", "Key skills, free text")
	generateCommand.Flags().StringVar(&genExperience, "experience", "", "Experience summary, free text")
	generateCommand.Flags().StringVar(&genMotivation, "motivation", "", "Why this company, free text")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default: derived from job title, \"-\" for stdout)")
	generateCommand.Flags().BoolVar(&genList, "list", false, "List available skeletons and exit")
	rootCmd.AddCommand(generateCommand)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if genList {
		for _, sk := range coverletter.Skeletons() {
			fmt.Printf("%-12s %s\n", sk.ID, sk.Description)
		}
		return nil
	}

	fields := types.CoverLetterFields{
		JobTitle:    genJobTitle,
		CompanyName: genCompany,
		YourName:    genName,
		YourEmail:   genEmail,
		YourPhone:   genPhone,
		Skills:      genSkills,
		Experience:  genExperience,
		Motivation:  genMotivation,
	}
	if err := fields.Validate(); err != nil {
		return fmt.Errorf("all fields are required: %w", err)
	}

	content := coverletter.Generate(genTemplate, fields)

	if genOutput == "-" {
		fmt.Println(content)
		return nil
	}

	output := genOutput
	if output == "" {
		output = coverletter.Filename(fields)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}

	fmt.Printf("Cover letter written to %s\n", output)
	return nil
}
