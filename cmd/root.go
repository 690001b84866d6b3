package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/asdscreen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "asdscreen",
	Short: "Terminal ASD-trait screening questionnaire",
	Long: "asdscreen — a short, linear screening questionnaire. Ten questions plus four\n" +
		"demographic answers are scored by a pre-trained model loaded at startup.\n" +
		"The result is a screening aid, not a diagnosis.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. Errors not already reported are printed
// to stderr.
func Execute() error {
	err := rootCmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/asdscreen/config.yaml)")
	pf.String("scaler", "", "Path to the scaler artifact (overrides "+config.EnvScaler+")")
	pf.String("model", "", "Path to the classifier artifact (overrides "+config.EnvModel+")")
	pf.String("log-file", "", "Path to the log file (overrides "+config.EnvLogFile+")")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides "+config.EnvLogLevel+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(questionsCmd)
}

// resolveConfig applies defaults, the config file, the environment and
// finally command-line flags, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	scaler, _ := cmd.Flags().GetString("scaler")
	model, _ := cmd.Flags().GetString("model")
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")
	cfg.MergeFlags(scaler, model, logFile, logLevel)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
