// pdfoutline extracts the title and H1-H4 outline of every PDF in a folder
// and writes one JSON file per document.
//
// Usage:
//
//	pdfoutline [flags] <input_folder> <output_folder>
//	pdfoutline -fixed
//
// Flags:
//
//	-config string      YAML file overriding the default extraction rules
//	-strategy string    Force a pipeline: structured, application-form,
//	                    poster, sparse-poster, legacy or generic
//	-fixed              Process ./input into ./output with "_output.json"
//	                    names and per-file timing lines
//	-log-level string   debug, info, warn or error (default "info")
//	-log-format string  text or json (default "text")
//
// Each input "name.pdf" produces "name_headings.json" holding
//
//	{
//	  "title": "...",
//	  "outline": [{"level": "H1", "text": "...", "page": 0}]
//	}
//
// A missing input folder or a folder without PDFs is reported and ends the
// run with status 0, as does a wrong number of arguments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pdfoutline/batch"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
)

const usage = "Usage: pdfoutline [flags] <input_folder> <output_folder>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pdfoutline", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML file overriding the default extraction rules")
	strategyName := fs.String("strategy", "", "force a pipeline (structured, application-form, poster, sparse-poster, legacy, generic)")
	fixed := fs.Bool("fixed", false, "process ./input into ./output with timing lines")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "text", "log format (text, json)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var config batch.Config
	switch {
	case *fixed && fs.NArg() == 0:
		config = batch.FixedConfig()
	case fs.NArg() == 2:
		config = batch.DefaultConfig(fs.Arg(0), fs.Arg(1))
		if *fixed {
			fixedConfig := batch.FixedConfig()
			config.Suffix = fixedConfig.Suffix
			config.Timing = fixedConfig.Timing
		}
	default:
		fmt.Fprintln(stdout, usage)
		return 0
	}

	if *configPath != "" {
		r, err := rules.Load(*configPath)
		if err != nil {
			log.WithError(err).Error("Failed to load rules")
			return 1
		}
		config.Rules = r
		log.WithField("config", *configPath).Debug("Loaded rules")
	}

	if *strategyName != "" {
		s, err := shape.ParseStrategy(*strategyName)
		if err != nil {
			log.WithError(err).Error("Invalid strategy")
			return 2
		}
		config.Strategy = s
		config.Force = true
	}

	summary, err := batch.New(config).WithLogger(log).WithOutput(stdout).Run(ctx)
	switch {
	case errors.Is(err, batch.ErrInputNotDir):
		fmt.Fprintf(stdout, "Error: Input folder '%s' does not exist or is not a directory.\n", config.InputDir)
		return 0
	case errors.Is(err, batch.ErrNoPDFs):
		fmt.Fprintf(stdout, "Warning: No PDF files found in input folder '%s'.\n", config.InputDir)
		return 0
	case err != nil:
		log.WithError(err).Error("Batch aborted")
		return 1
	}

	log.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"failed":    summary.Failed,
		"output":    config.OutputDir,
	}).Info("Batch finished")
	return 0
}

// newLogger builds a logrus logger writing to w
func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return log, nil
}
