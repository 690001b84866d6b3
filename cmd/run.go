package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/asdscreen/internal/app"
	"github.com/abhisek/asdscreen/internal/config"
	"github.com/abhisek/asdscreen/internal/logging"
	"github.com/abhisek/asdscreen/internal/model"
	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/screening"
)

// runApp loads config and model artifacts, then launches the TUI.
// A missing or incompatible artifact stops here, before any screen is shown.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = logging.Nop()
	}
	defer func() { _ = log.Sync() }()

	bundle, err := model.Load(cfg.ScalerPath, cfg.ClassifierPath, screening.FeatureCount)
	if err != nil {
		log.Error("model load failed", zap.Error(err))
		reportLoadError(err)
		return reportedError{err}
	}
	log.Info("model loaded",
		zap.String("scaler", cfg.ScalerPath),
		zap.String("classifier", cfg.ClassifierPath),
		zap.String("kind", bundle.Classifier.Kind))

	return app.Run(app.Options{
		Predictor: predictor.New(bundle.Scaler, bundle.Classifier, log),
		Logger:    log,
	})
}

// reportLoadError prints a short, colored explanation for a fatal
// artifact problem.
func reportLoadError(err error) {
	red := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	var le *model.LoadError
	if !errors.As(err, &le) {
		red.Fprintln(os.Stderr, "Could not load the screening model:", err)
		return
	}

	red.Fprintf(os.Stderr, "Could not load the %s artifact.\n", le.Artifact)
	if le.Path != "" {
		dim.Fprintf(os.Stderr, "  path:  %s\n", le.Path)
	}
	dim.Fprintf(os.Stderr, "  cause: %v\n", le.Err)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "\nSet --scaler/--model or %s/%s to the exported artifacts.\n",
			config.EnvScaler, config.EnvModel)
	}
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }
