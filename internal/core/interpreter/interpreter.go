package interpreter

import (
	"context"
	"time"

	"github.com/yndnr/bpls-go/internal/core/domain"
	"github.com/yndnr/bpls-go/internal/storage/files"
	"github.com/yndnr/bpls-go/internal/storage/snapshot"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
	"github.com/yndnr/bpls-go/internal/telemetry/metric"
)

// Screen clears the user's display for the CLEAR command.
type Screen interface {
	Clear() error
}

// Recorder receives one observation per executed command.
type Recorder interface {
	ObserveCommand(verb, outcome string, d time.Duration)
}

type nopScreen struct{}

func (nopScreen) Clear() error { return nil }

type nopRecorder struct{}

func (nopRecorder) ObserveCommand(string, string, time.Duration) {}

// Interpreter owns one set of symbol tables and executes lines against it.
// It is not safe for concurrent use.
type Interpreter struct {
	tables  *domain.Tables
	files   files.Files
	screen  Screen
	metrics Recorder
	log     logger.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithFiles sets the file collaborator. The default is an empty in-memory
// sandbox.
func WithFiles(f files.Files) Option {
	return func(in *Interpreter) {
		in.files = f
	}
}

// WithScreen sets the screen cleared by CLEAR.
func WithScreen(s Screen) Option {
	return func(in *Interpreter) {
		in.screen = s
	}
}

// WithMetrics sets the command recorder.
func WithMetrics(r Recorder) Option {
	return func(in *Interpreter) {
		in.metrics = r
	}
}

// WithLogger sets the logger for per-command debug lines.
func WithLogger(l logger.Logger) Option {
	return func(in *Interpreter) {
		in.log = l
	}
}

// New creates an interpreter with empty tables.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		tables:  domain.NewTables(),
		files:   files.NewMemory(),
		screen:  nopScreen{},
		metrics: nopRecorder{},
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Exec runs one line and returns its result message. A failed command
// leaves the tables unchanged.
func (in *Interpreter) Exec(ctx context.Context, line string) (string, error) {
	start := time.Now()
	ctx = logger.WithCommandID(ctx, logger.NewID())
	log := in.logger(ctx)

	verb := "UNKNOWN"
	msg, err := func() (string, error) {
		tokens, err := Tokenize(line)
		if err != nil {
			return "", err
		}
		cmd, err := Parse(tokens)
		if err != nil {
			return "", err
		}
		verb = cmd.Verb()
		return in.execute(cmd)
	}()

	elapsed := time.Since(start)
	outcome := metric.OutcomeOK
	if err != nil {
		outcome = domain.KindOf(err).String()
		log.Debug("command failed", "verb", verb, "code", domain.GetErrorCode(err), "error", err, "duration", elapsed)
	} else {
		log.Debug("command executed", "verb", verb, "duration", elapsed)
	}
	in.metrics.ObserveCommand(verb, outcome, elapsed)

	return msg, err
}

// Execute runs one line and returns the text shown to the user: the result
// message, or "Error: ..." on failure.
func (in *Interpreter) Execute(ctx context.Context, line string) string {
	msg, err := in.Exec(ctx, line)
	if err != nil {
		return domain.Describe(err)
	}
	return msg
}

// Snapshot returns a copy of the current tables.
func (in *Interpreter) Snapshot() *snapshot.Snapshot {
	return snapshot.FromTables(in.tables)
}

// Restore replaces the tables with a copy of s. An inconsistent snapshot is
// rejected and the current tables are kept.
func (in *Interpreter) Restore(s *snapshot.Snapshot) error {
	t := s.Tables()
	if err := t.Verify(); err != nil {
		return domain.ErrSnapshotInvalid.Detailf("Inconsistent snapshot: %v.", err).WithCause(err)
	}
	in.tables = t
	return nil
}

// Counts reports the sizes of the three tables.
func (in *Interpreter) Counts() (objects, groups, variables int) {
	return in.tables.Counts()
}

func (in *Interpreter) logger(ctx context.Context) logger.Logger {
	return logger.L(logger.WithLogger(ctx, in.log))
}
