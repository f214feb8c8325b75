package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yndnr/bpls-go/internal/cli/output"
	"github.com/yndnr/bpls-go/internal/core/domain"
	"github.com/yndnr/bpls-go/internal/core/interpreter"
	"github.com/yndnr/bpls-go/internal/infra/buildinfo"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

const (
	defaultPrompt = "BPLS> "
	exitMessage   = "Exiting BPLS interpreter."
	timeLayout    = "15:04:05"
)

// Executor runs one interpreter line.
type Executor interface {
	Exec(ctx context.Context, line string) (string, error)
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	exec      Executor
	input     io.Reader
	output    io.Writer
	prompt    string
	immediate bool
	style     *output.Styler
	completer *Completer
	history   *History
	log       logger.Logger
	now       func() time.Time

	queue []string
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithPrompt overrides the "BPLS> " prompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		if prompt != "" {
			r.prompt = prompt
		}
	}
}

// WithImmediate runs each line as soon as it is read instead of queueing it.
func WithImmediate(on bool) Option {
	return func(r *REPL) { r.immediate = on }
}

// WithHistory records entered lines.
func WithHistory(h *History) Option {
	return func(r *REPL) { r.history = h }
}

// WithStyler sets the output colors.
func WithStyler(s *output.Styler) Option {
	return func(r *REPL) { r.style = s }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logger.Logger) Option {
	return func(r *REPL) { r.log = l }
}

// WithClock replaces time.Now for START/END reporting.
func WithClock(now func() time.Time) Option {
	return func(r *REPL) { r.now = now }
}

// New creates a new REPL around exec.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		exec:      exec,
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    defaultPrompt,
		completer: NewCompleter(),
		history:   NewHistory("", 0),
		log:       logger.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.style == nil {
		r.style = output.NewStyler(r.output)
	}
	return r
}

// Queue returns the lines waiting for RUN CODE.
func (r *REPL) Queue() []string {
	return append([]string(nil), r.queue...)
}

// Run starts the REPL loop. It returns nil on EXIT, QUIT, end of input or
// cancellation of ctx, and the read error otherwise.
func (r *REPL) Run(ctx context.Context) error {
	r.banner()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.output, r.prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.output)
			fmt.Fprintln(r.output, exitMessage)
			r.log.Debug("repl interrupted", "queued", len(r.queue))
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.output)
				fmt.Fprintln(r.output, exitMessage)
				var err error
				select {
				case err = <-readErr:
				default:
				}
				return err
			}
			if r.handle(ctx, line) {
				return nil
			}
		}
	}
}

func (r *REPL) banner() {
	fmt.Fprintln(r.output, r.style.Title(fmt.Sprintf("BPLS v%s - Beginner's Programming Language for Statistics", buildinfo.LanguageVersion)))
	if r.immediate {
		fmt.Fprintln(r.output, "Commands run as you type them. Type HELP to list them.")
	} else {
		fmt.Fprintln(r.output, "Type commands to queue them. Use RUN CODE to execute all queued commands.")
	}
	fmt.Fprintln(r.output, "Type EXIT or QUIT to leave.")
	fmt.Fprintln(r.output)
}

// handle processes one input line and reports whether the loop should end.
func (r *REPL) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r.history.Add(line)

	switch strings.Join(strings.Fields(strings.ToUpper(line)), " ") {
	case "EXIT", "QUIT":
		fmt.Fprintln(r.output, exitMessage)
		return true
	case "RUN CODE":
		r.runQueue(ctx)
	case "HELP":
		for _, u := range interpreter.Usage() {
			fmt.Fprintln(r.output, "  "+u)
		}
		fmt.Fprintln(r.output, "  RUN CODE | HELP | EXIT | QUIT")
	default:
		if r.immediate {
			r.execute(ctx, line)
		} else {
			r.queue = append(r.queue, line)
		}
	}
	return false
}

func (r *REPL) runQueue(ctx context.Context) {
	start := r.now()
	fmt.Fprintln(r.output, r.style.Dim("START: "+start.Format(timeLayout)))

	for _, line := range r.queue {
		r.execute(ctx, line)
	}

	end := r.now()
	fmt.Fprintln(r.output, r.style.Dim("END:   "+end.Format(timeLayout)))
	fmt.Fprintln(r.output, r.style.Dim(fmt.Sprintf("DURATION: %v", end.Sub(start))))

	r.log.Debug("queue executed", "commands", len(r.queue), "duration", end.Sub(start))
	r.queue = nil
}

func (r *REPL) execute(ctx context.Context, line string) {
	msg, err := r.exec.Exec(ctx, line)
	if err != nil {
		fmt.Fprintln(r.output, r.style.Error(domain.Describe(err)))
		if errors.Is(err, domain.ErrUnrecognized) {
			if hint := r.completer.Hint(line); hint != "" {
				fmt.Fprintln(r.output, r.style.Hint(hint))
			}
		}
		return
	}
	if msg != "" {
		fmt.Fprintln(r.output, msg)
	}
}
