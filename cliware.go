package cliware

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cliware/cliware/logging"
	"github.com/cliware/cliware/settings"
)

// CLI is the per-invocation host: it owns the merged settings tree, the
// parsed options, and the generated logging methods. Build one with New;
// the zero value is not usable.
type CLI struct {
	name        string
	description string
	settings    map[string]any
	defs        []OptionDef
	options     *Options
	logs        *logging.Set

	args   []string
	stdin  io.Reader
	input  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

// Option adjusts CLI construction. The defaults wire the host to the real
// process: os.Args, standard streams, and os.Exit.
type Option func(*CLI)

// WithArgs substitutes the argument vector (excluding the program name).
func WithArgs(args []string) Option {
	return func(c *CLI) { c.args = args }
}

// WithStdin substitutes the prompt input stream.
func WithStdin(r io.Reader) Option {
	return func(c *CLI) { c.stdin = r }
}

// WithStdout substitutes the default output channel and help destination.
func WithStdout(w io.Writer) Option {
	return func(c *CLI) { c.stdout = w }
}

// WithStderr substitutes the warn/error output channel.
func WithStderr(w io.Writer) Option {
	return func(c *CLI) { c.stderr = w }
}

// WithExit substitutes the process-exit function. Help display and
// construction failures exit through this seam.
func WithExit(exit func(int)) Option {
	return func(c *CLI) { c.exit = exit }
}

// New builds a CLI host: settings merge, logging method generation, and
// option parsing run strictly in that order, each completing before the
// next starts. Any failure is caught, reported through the best available
// logger, and redirected into help display followed by exit 0 — New never
// hands a half-initialized host to a running program. When --help is
// parsed, the help screen is shown and the process exits 0.
//
// Under WithExit the stubbed exit returns, and New returns the host in
// whatever state construction reached so tests can inspect it.
func New(overrides any, opts ...Option) *CLI {
	c := &CLI{
		options: &Options{Values: map[string]any{}},
		args:    os.Args[1:],
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.construct(overrides); err != nil {
		c.fail(err)
		return c
	}
	if c.options.Help {
		c.ShowHelp()
		c.exit(0)
	}
	return c
}

func (c *CLI) construct(overrides any) error {
	merged, err := settings.Merge(defaultSettings(), overrides)
	if err != nil {
		return err
	}
	c.settings = merged
	c.name = stringAt(merged, "name")
	c.description = stringAt(merged, "description")

	cfgs, err := DecodeLogging(merged)
	if err != nil {
		return err
	}
	logs, err := logging.New(cfgs, c,
		logging.WithWriters(c.stdout, c.stderr),
		logging.WithReserved(reservedMethodNames...),
		logging.WithForceNoThrow(boolAt(merged, "allowForceNoThrow")),
	)
	if err != nil {
		return err
	}
	c.logs = logs

	defs, err := DecodeOptionDefs(merged)
	if err != nil {
		return err
	}
	c.defs = defs

	parsed, err := c.parseOptions(defs)
	if err != nil {
		return err
	}
	parsed.Force = c.options.Force
	c.options = parsed
	return nil
}

// fail is the single catch point for construction errors. The force flag
// is raised first so reporting through a throwing logger cannot escalate
// again, then the error is surfaced, help is shown, and the process exits
// with code 0.
func (c *CLI) fail(err error) {
	c.options.Force = true

	msg := errorText(err)
	reported := false
	if c.logs != nil {
		if _, ok := c.logs.Method("error"); ok {
			_ = c.logs.Call("error", msg)
			reported = true
		}
	}
	if !reported {
		fmt.Fprintln(c.stderr, msg)
	}
	fmt.Fprintln(c.stderr, err)

	c.ShowHelp()
	c.exit(0)
}

// errorText picks the message shown to the user: the error string when it
// has one, otherwise the error's type name, otherwise its raw rendering.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%T", err)
}

// Name returns the tool name from the merged settings.
func (c *CLI) Name() string { return c.name }

// Settings returns the merged settings tree. Callers must treat it as
// read-only; it is fixed for the life of the host.
func (c *CLI) Settings() map[string]any { return c.settings }

// Options returns the parsed option bag.
func (c *CLI) Options() *Options { return c.options }

// Log invokes a generated logging method by name. The returned error is an
// *logging.EscalationError when the method is configured to throw.
func (c *CLI) Log(name string, args ...any) error {
	if c.logs == nil {
		return fmt.Errorf("cliware: logging not initialized")
	}
	return c.logs.Call(name, args...)
}

// LogMethod returns the generated method for name, if any.
func (c *CLI) LogMethod(name string) (logging.Func, bool) {
	if c.logs == nil {
		return nil, false
	}
	return c.logs.Method(name)
}

// Verbose, Quiet, and Force expose the runtime flags the generated logging
// methods consult on every call.

func (c *CLI) Verbose() bool { return c.options != nil && c.options.Verbose }

func (c *CLI) Quiet() bool { return c.options != nil && c.options.Quiet }

func (c *CLI) Force() bool { return c.options != nil && c.options.Force }

func stringAt(tree map[string]any, key string) string {
	if s, ok := tree[key].(string); ok {
		return s
	}
	return ""
}

func boolAt(tree map[string]any, key string) bool {
	if b, ok := tree[key].(bool); ok {
		return b
	}
	return false
}
