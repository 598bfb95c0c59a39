// Package main is the entry point for schemakit.
//
// schemakit reads declarative entity definitions, validates them into a
// domain model and derives the IDL schema with generated create-input
// types.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/schemakit/schemakit/config"
	"github.com/schemakit/schemakit/core/inputgen"
	"github.com/schemakit/schemakit/core/model"
	"github.com/schemakit/schemakit/core/schema"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	defsPath := flag.String("defs", "definitions", "Path to a definition file or directory")
	validateOnly := flag.Bool("validate", false, "Validate definitions and exit")
	outPath := flag.String("out", "", "Write the derived IDL to a file instead of stdout")
	watch := flag.Bool("watch", false, "Watch definitions and re-derive on change")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("schemakit %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	logger := newLogger(*logLevel)

	if *watch {
		runWatch(*defsPath, *outPath, logger)
		return
	}

	cfg, err := config.Load(*defsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading definitions failed")
	}

	ok := run(cfg, *validateOnly, *outPath, logger)
	if !ok {
		os.Exit(1)
	}
}

// run validates the definitions and, unless validateOnly is set, derives
// and writes the IDL document. Returns false when validation found errors.
func run(cfg *config.Config, validateOnly bool, outPath string, logger zerolog.Logger) bool {
	m := model.NewModel(cfg.Project)

	result := m.Validate(nil)
	logMessages(logger, result)
	if result.HasErrors() {
		logger.Error().Int("types", len(cfg.Project.Types)).Msg("definitions are invalid")
		return false
	}
	logger.Info().
		Int("types", len(m.Types())).
		Int("relations", len(m.Relations())).
		Msg("definitions are valid")

	if validateOnly {
		return true
	}

	doc, err := inputgen.DeriveDocument(m)
	if err != nil {
		logger.Error().Err(err).Msg("deriving IDL failed")
		return false
	}

	if outPath == "" {
		fmt.Print(doc.String())
		return true
	}
	if err := os.WriteFile(outPath, []byte(doc.String()), 0o644); err != nil {
		logger.Error().Err(err).Msg("writing IDL failed")
		return false
	}
	logger.Info().Str("path", outPath).Msg("IDL written")
	return true
}

// runWatch keeps re-deriving until interrupted.
func runWatch(defsPath, outPath string, logger zerolog.Logger) {
	holder, err := config.NewHolder(defsPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading definitions failed")
	}
	defer holder.Stop()

	holder.OnChange(func(cfg *config.Config) {
		run(cfg, false, outPath, logger)
	})
	if err := holder.Watch(); err != nil {
		logger.Fatal().Err(err).Msg("watching definitions failed")
	}
	holder.WatchSignals()

	run(holder.Get(), false, outPath, logger)
	select {}
}

func logMessages(logger zerolog.Logger, result schema.ValidationResult) {
	for _, msg := range result.Messages() {
		event := logger.Info()
		switch msg.Severity {
		case schema.SeverityError:
			event = logger.Error()
		case schema.SeverityWarning:
			event = logger.Warn()
		}
		if msg.Location != nil {
			event = event.Str("location", msg.Location.String())
		}
		event.Msg(msg.Message)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
