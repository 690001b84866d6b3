package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/asdscreen/internal/model"
	"github.com/abhisek/asdscreen/internal/screening"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect the model artifacts",
}

var modelCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the scaler and classifier artifacts without starting the questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		bundle, err := model.Load(cfg.ScalerPath, cfg.ClassifierPath, screening.FeatureCount)
		if err != nil {
			reportLoadError(err)
			return reportedError{err}
		}

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)
		cyan := color.New(color.FgCyan)

		bold.Println("Scaler")
		fmt.Printf("  %-16s %s\n", "path", cfg.ScalerPath)
		fmt.Printf("  %-16s %s\n", "format", bundle.Scaler.FormatVersion)
		fmt.Printf("  %-16s %s\n", "kind", bundle.Scaler.Kind)
		fmt.Printf("  %-16s %d\n", "features", bundle.Scaler.NFeatures)
		fmt.Println()

		bold.Println("Classifier")
		fmt.Printf("  %-16s %s\n", "path", cfg.ClassifierPath)
		fmt.Printf("  %-16s %s\n", "format", bundle.Classifier.FormatVersion)
		fmt.Printf("  %-16s %s\n", "kind", bundle.Classifier.Kind)
		fmt.Printf("  %-16s %d\n", "features", bundle.Classifier.NFeatures)
		fmt.Printf("  %-16s %.4f\n", "intercept", bundle.Classifier.Intercept)

		if verbose, _ := cmd.Flags().GetBool("weights"); verbose {
			fmt.Println()
			cyan.Println("Feature weights")
			fmt.Println(strings.Repeat("─", 52))
			for i, w := range bundle.Classifier.Coef {
				fmt.Printf("  %-12s mean=%-9.4f scale=%-9.4f coef=%.4f\n",
					featureName(bundle.Scaler, i), bundle.Scaler.Mean[i], bundle.Scaler.Scale[i], w)
			}
		}

		fmt.Println()
		green.Println("✓ Artifacts are compatible with this build")
		return nil
	},
}

func init() {
	modelCheckCmd.Flags().Bool("weights", false, "Also print per-feature scaler and classifier parameters")
	modelCmd.AddCommand(modelCheckCmd)
}

// featureName prefers the name stored in the artifact over the index.
func featureName(s *model.StandardScaler, i int) string {
	if i < len(s.FeatureNames) {
		return s.FeatureNames[i]
	}
	return fmt.Sprintf("f%d", i)
}
