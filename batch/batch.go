package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
)

var (
	// ErrInputNotDir is returned when the input folder is missing or is not
	// a directory
	ErrInputNotDir = errors.New("input folder does not exist or is not a directory")

	// ErrNoPDFs is returned when the input folder holds no PDF files
	ErrNoPDFs = errors.New("no PDF files found in input folder")
)

// Config holds configuration for a batch run
type Config struct {
	// InputDir is scanned for *.pdf files (case-insensitive, not recursive)
	InputDir string

	// OutputDir receives the JSON files; it is created if absent
	OutputDir string

	// Suffix replaces the ".pdf" extension in output file names
	// Default: "_headings.json"
	Suffix string

	// Timing switches the report to the per-file timing format
	Timing bool

	// Rules overrides the default extraction rules when non-nil
	Rules *rules.Rules

	// Source overrides the PDF decoder when non-nil
	Source geometry.Source

	// Strategy is forced on every file when Force is set
	Strategy shape.Strategy
	Force    bool
}

// DefaultConfig returns the configuration for processing inputDir into
// outputDir
func DefaultConfig(inputDir, outputDir string) Config {
	return Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Suffix:    "_headings.json",
	}
}

// FixedConfig returns the configuration of the timing mode: "input" into
// "output" with "_output.json" names
func FixedConfig() Config {
	return Config{
		InputDir:  "input",
		OutputDir: "output",
		Suffix:    "_output.json",
		Timing:    true,
	}
}

// Summary describes a finished run
type Summary struct {
	// Processed counts files whose JSON was written
	Processed int

	// Failed counts files that could not be processed
	Failed int

	// Outputs lists the written JSON paths in processing order
	Outputs []string
}

// Driver processes a folder of PDFs
type Driver struct {
	config Config
	log    logrus.FieldLogger
	out    io.Writer
	now    func() time.Time
}

// New creates a driver that reports to stdout and logs to the standard
// logrus logger
func New(config Config) *Driver {
	if config.Suffix == "" {
		config.Suffix = DefaultConfig("", "").Suffix
	}
	return &Driver{
		config: config,
		log:    logrus.StandardLogger(),
		out:    os.Stdout,
		now:    time.Now,
	}
}

// WithLogger sets the structured logger
func (d *Driver) WithLogger(log logrus.FieldLogger) *Driver {
	d.log = log
	return d
}

// WithOutput sets where the per-file report lines are written
func (d *Driver) WithOutput(w io.Writer) *Driver {
	d.out = w
	return d
}

// Run processes every PDF of the input folder. It returns ErrInputNotDir or
// ErrNoPDFs before touching any file; per-file failures are only counted.
// A cancelled context stops the run between files.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	files, err := d.inputs()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(d.config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output folder %s: %w", d.config.OutputDir, err)
	}

	summary := &Summary{}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		path := filepath.Join(d.config.InputDir, name)
		outPath := filepath.Join(d.config.OutputDir, OutputName(name, d.config.Suffix))

		if d.config.Timing {
			fmt.Fprintf(d.out, "Processing: %s\n", path)
		}

		// only extraction is timed, not the write
		start := d.now()
		res, err := d.extract(path)
		elapsed := d.now().Sub(start)
		if err == nil {
			err = write(res, outPath)
		}

		logger := d.log.WithFields(logrus.Fields{
			"file":    name,
			"elapsed": elapsed.Round(time.Millisecond).String(),
		})

		if err != nil {
			summary.Failed++
			logger.WithError(err).Error("Failed to process file")
			fmt.Fprintf(d.out, "Error processing '%s': %v\n", name, err)
			continue
		}

		summary.Processed++
		summary.Outputs = append(summary.Outputs, outPath)
		logger.WithFields(logrus.Fields{
			"strategy": res.Strategy.String(),
			"headings": res.Headings(),
		}).Info("Extracted outline")

		if d.config.Timing {
			fmt.Fprintf(d.out, "Saved to: %s\n", outPath)
			fmt.Fprintf(d.out, "Time taken: %.2f seconds\n\n", elapsed.Seconds())
		} else {
			fmt.Fprintf(d.out, "Processed '%s' -> Output saved to '%s'\n", name, outPath)
		}
	}

	return summary, nil
}

// inputs lists the PDF file names of the input folder in sorted order
func (d *Driver) inputs() ([]string, error) {
	info, err := os.Stat(d.config.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotDir, d.config.InputDir)
	}

	entries, err := os.ReadDir(d.config.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder %s: %w", d.config.InputDir, err)
	}

	// ReadDir returns entries sorted by name
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPDFs, d.config.InputDir)
	}
	return files, nil
}

// extract runs the extractor on one file. Panics are returned as errors so
// that one bad file cannot end the batch.
func (d *Driver) extract(path string) (res *pdfoutline.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("unexpected failure: %v", rec)
		}
	}()

	ext := pdfoutline.Open(path)
	if d.config.Rules != nil {
		ext = ext.WithRules(d.config.Rules)
	}
	if d.config.Source != nil {
		ext = ext.WithSource(d.config.Source)
	}
	if d.config.Force {
		ext = ext.ForceStrategy(d.config.Strategy)
	}

	return ext.Extract()
}

// write stores the JSON of res at outPath
func write(res *pdfoutline.Result, outPath string) error {
	data, err := res.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// OutputName derives the JSON file name for an input file name
func OutputName(name, suffix string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + suffix
}
