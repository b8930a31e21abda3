package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corvidae/graphql"
	"github.com/corvidae/graphql/cliconfig"
	"github.com/corvidae/graphql/parser"
)

var argsCheck struct {
	values     bool
	configPath string
}

var cmdCheck = &cobra.Command{
	Use:   "check <files...>",
	Short: "Parse each file and report syntax errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	cmdCheck.Flags().BoolVar(&argsCheck.values, "values", false, "parse each file as a standalone value literal instead of a document")
	cmdCheck.Flags().StringVar(&argsCheck.configPath, "config", "", "path to a gqlcheck YAML config file")
}

func runCheck(_ *cobra.Command, files []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := cliconfig.Load(argsCheck.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var opts []parser.Option
	if cfg.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(cfg.MaxDepth))
	}

	failed := 0
	for _, file := range files {
		if err := checkFile(logger, file, cfg.ColorEnabled(), opts); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	return nil
}

func checkFile(logger *zap.Logger, path string, color bool, opts []parser.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading file", zap.String("file", path), zap.Error(err))
		return err
	}

	if argsCheck.values {
		if _, gqlErr := graphql.ParseValueSource(string(data), opts...); gqlErr != nil {
			logger.Error("syntax error", zap.String("file", path), zap.Error(gqlErr))
			fmt.Fprintln(os.Stderr, formatError(path, gqlErr.Error(), color))
			return gqlErr
		}
		logger.Info("value ok", zap.String("file", path))
		return nil
	}

	doc, gqlErr := graphql.ParseDocumentSource(string(data), opts...)
	if gqlErr != nil {
		logger.Error("syntax error", zap.String("file", path), zap.Error(gqlErr))
		fmt.Fprintln(os.Stderr, formatError(path, gqlErr.Error(), color))
		return gqlErr
	}
	logger.Info("document ok", zap.String("file", path), zap.Int("definitions", len(doc.Definitions)))
	return nil
}

func formatError(path, message string, color bool) string {
	if !color {
		return fmt.Sprintf("%s: %s", path, message)
	}
	return fmt.Sprintf("\x1b[31m%s: %s\x1b[0m", path, message)
}
