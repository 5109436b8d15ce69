package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/romware/superreader/internal/config"
	"github.com/romware/superreader/internal/console"
	"github.com/romware/superreader/internal/fileio"
	"github.com/romware/superreader/internal/logging"
	"github.com/romware/superreader/internal/monitoring"
	"github.com/romware/superreader/internal/pipeline"
	"github.com/romware/superreader/internal/shared/id"
)

// Exit codes, one per fatal error class.
const (
	exitOK        = 0
	exitChannel   = 1 // byte channel creation failed
	exitStage     = 2 // a pipeline stage failed
	exitChannelIO = 3 // byte channel read or write failed
	exitConfig    = 4 // unusable configuration
)

// job is one input/output pair to run through the pipeline.
type job struct {
	inPath  string
	outPath string
	in      io.ReadCloser
	out     io.WriteCloser
}

func main() {
	os.Exit(run())
}

func run() int {
	inPath := flag.String("in", "", "Input file (prompted for when omitted)")
	outPath := flag.String("out", "", "Output file (prompted for when omitted)")
	glob := flag.String("glob", "", "Process every file matching this pattern (supports **)")
	configPath := flag.String("config", "", "TOML config file")
	dev := flag.Bool("dev", false, "Development logging (colored, debug level)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return exitConfig
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return exitConfig
	}

	logger := newLogger(cfg, *dev)
	defer logger.Sync()

	runID := id.NewRunID()
	log := logger.With(zap.String("run_id", runID.String()))

	metrics := monitoring.NewMetrics()
	ui := console.New(os.Stdin, os.Stdout, cfg.Console.Color)
	ui.Welcome()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs, err := resolveJobs(ui, log, *inPath, *outPath, *glob)
	if err != nil {
		log.Error("no usable input", zap.Error(err))
		return exitStage
	}

	ui.Header()
	ui.Line("SUCCESS: Program started transferring data", console.Yellow)
	ui.Divider()

	for _, j := range jobs {
		if code := runJob(ctx, cfg, log, metrics, ui, j); code != exitOK {
			return code
		}
	}

	snap := metrics.GetSnapshot()
	ui.Varf("SUCCESS: Records written: ", console.Yellow, fmt.Sprint(snap.RecordsWritten))
	ui.Footer()

	log.Info("all transfers complete",
		zap.Int("jobs", len(jobs)),
		zap.Int64("records_written", snap.RecordsWritten),
		zap.Int64("header_skipped", snap.HeaderSkipped),
		zap.Duration("elapsed", snap.Elapsed))
	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func newLogger(cfg *config.Config, dev bool) *logging.Logger {
	if dev || cfg.Logging.Development {
		return logging.NewDevelopment()
	}
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// resolveJobs turns the flags into input/output pairs. Without flags it
// falls back to the interactive prompt-until-valid loop.
func resolveJobs(ui *console.Console, log *logging.Logger, inPath, outPath, glob string) ([]job, error) {
	if glob != "" {
		return globJobs(log, glob)
	}
	if inPath != "" && outPath != "" {
		j, err := openJob(log, inPath, outPath)
		if err != nil {
			return nil, err
		}
		return []job{j}, nil
	}
	return promptJob(ui, log)
}

func globJobs(log *logging.Logger, pattern string) ([]job, error) {
	files, err := fileio.Expand(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand glob: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}

	jobs := make([]job, 0, len(files))
	for _, f := range files {
		j, err := openJob(log, f, f+".out")
		if err != nil {
			closeJobs(jobs)
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func closeJobs(jobs []job) {
	for _, j := range jobs {
		j.in.Close()
		j.out.Close()
	}
}

func openJob(log *logging.Logger, inPath, outPath string) (job, error) {
	warnIfBinary(log, inPath)

	in, err := fileio.Open(inPath)
	if err != nil {
		return job{}, err
	}
	out, err := fileio.Create(outPath)
	if err != nil {
		in.Close()
		return job{}, err
	}
	return job{inPath: inPath, outPath: outPath, in: in, out: out}, nil
}

func promptJob(ui *console.Console, log *logging.Logger) ([]job, error) {
	var in io.ReadCloser
	inPath, err := ui.PromptFilename("import", func(name string) error {
		r, openErr := fileio.Open(name)
		if openErr != nil {
			return openErr
		}
		in = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	warnIfBinary(log, inPath)

	var out io.WriteCloser
	outPath, err := ui.PromptFilename("output", func(name string) error {
		w, createErr := fileio.Create(name)
		if createErr != nil {
			return createErr
		}
		out = w
		return nil
	})
	if err != nil {
		in.Close()
		return nil, err
	}

	return []job{{inPath: inPath, outPath: outPath, in: in, out: out}}, nil
}

func warnIfBinary(log *logging.Logger, path string) {
	isText, mime, err := fileio.IsText(path)
	if err == nil && !isText {
		log.Warn("input does not look like text", zap.String("path", path), zap.String("mime", mime))
	}
}

func runJob(ctx context.Context, cfg *config.Config, log *logging.Logger, metrics *monitoring.Metrics, ui *console.Console, j job) int {
	defer j.in.Close()

	jobID := id.NewJobID()
	jobLog := log.With(
		zap.String("job_id", jobID.String()),
		zap.String("input", j.inPath),
		zap.String("output", j.outPath),
	)

	p, err := pipeline.New(
		pipeline.Config{LineCap: cfg.Pipeline.LineCap, Marker: cfg.Pipeline.Marker},
		j.in, j.out,
		pipeline.WithLogger(jobLog),
		pipeline.WithMetrics(metrics),
	)
	if err != nil {
		j.out.Close()
		jobLog.Error("failed to assemble pipeline", zap.Error(err))
		return exitCode(err)
	}

	runErr := p.Run(ctx)
	if closeErr := j.out.Close(); runErr == nil && closeErr != nil {
		runErr = closeErr
	}
	if runErr != nil {
		jobLog.Error("transfer failed", zap.Error(runErr))
		return exitCode(runErr)
	}

	ui.Varf("SUCCESS: Read all data from ", console.Yellow, j.inPath)
	ui.Varf("SUCCESS: Output all data to ", console.Yellow, j.outPath)
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrChannel):
		return exitChannel
	case errors.Is(err, pipeline.ErrChannelWrite), errors.Is(err, pipeline.ErrChannelRead):
		return exitChannelIO
	case errors.Is(err, pipeline.ErrConfig):
		return exitConfig
	default:
		return exitStage
	}
}
