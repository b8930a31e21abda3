package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var argsRoot struct {
	logLevel string
	runID    string
}

var cmdRoot = &cobra.Command{
	Use:   "gqlcheck",
	Short: "Check GraphQL documents for syntax errors",
	Long:  `gqlcheck parses GraphQL documents and value literals and reports syntax errors.`,
}

func init() {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	cmdRoot.AddCommand(cmdCheck)
	cmdRoot.AddCommand(cmdVersion)
}

// Execute runs the gqlcheck command tree.
func Execute() error {
	argsRoot.runID = uuid.New().String()
	return cmdRoot.Execute()
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(argsRoot.logLevel)
	if err != nil {
		return nil, err
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", argsRoot.runID)), nil
}
