package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/asdscreen/internal/screening"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire and how answers are encoded",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-4s  %s\n", "#", "Question")
		fmt.Println(strings.Repeat("─", 80))
		for i, q := range screening.Questions {
			fmt.Printf("%-4d  %s\n", i+1, q)
		}

		fmt.Println()
		fmt.Printf("%-22s  %s\n", "Answer", "Code")
		fmt.Println(strings.Repeat("─", 30))
		for _, r := range screening.ResponseOptions {
			code, _ := r.Binary()
			fmt.Printf("%-22s  %d\n", r.Label(), code)
		}

		fmt.Println()
		fmt.Printf("%-22s  %s\n", "Demographic", "Code")
		fmt.Println(strings.Repeat("─", 30))
		for _, g := range screening.GenderOptions {
			code, _ := g.Code()
			fmt.Printf("%-22s  %d\n", "Gender: "+g.Label(), code)
		}
		for _, j := range screening.JaundiceOptions {
			code, _ := j.Code()
			fmt.Printf("%-22s  %d\n", "Jaundice: "+j.Label(), code)
		}
		for _, r := range screening.RelationOptions {
			code, _ := r.Code()
			fmt.Printf("%-22s  %d\n", "Relation: "+r.Label(), code)
		}

		fmt.Printf("\nFeature vector: %d values, [Q1..Q%d, age, gender, jaundice, relation]\n",
			screening.FeatureCount, screening.QuestionCount)
		return nil
	},
}
