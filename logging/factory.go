package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

const stampLayout = "2006-01-02 15:04:05"

// Func is a generated logging method. The returned error is non-nil only
// for methods configured with Throws, and carries the call's arguments.
type Func func(args ...any) error

// Set owns the logging methods generated from a configuration tree.
type Set struct {
	methods  map[string]Func
	channels map[string]io.Writer
	fallback io.Writer
	rt       Runtime
	reserved map[string]bool

	// allowForceNoThrow lets the runtime force flag suppress escalation.
	allowForceNoThrow bool

	now func() time.Time
}

// Option adjusts Set construction.
type Option func(*Set)

// WithWriters rebinds the standard output channels: warn and error go to
// stderr, everything else to stdout.
func WithWriters(stdout, stderr io.Writer) Option {
	return func(s *Set) {
		s.channels = standardChannels(stdout, stderr)
		s.fallback = stdout
	}
}

// WithChannel binds a single named channel, overriding the standard
// mapping for that name.
func WithChannel(name string, w io.Writer) Option {
	return func(s *Set) { s.channels[name] = w }
}

// WithReserved marks method names that may never be generated.
func WithReserved(names ...string) Option {
	return func(s *Set) {
		for _, n := range names {
			s.reserved[n] = true
		}
	}
}

// WithForceNoThrow controls whether the runtime force flag suppresses
// escalation from methods configured with Throws.
func WithForceNoThrow(allowed bool) Option {
	return func(s *Set) { s.allowForceNoThrow = allowed }
}

// WithClock substitutes the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Set) { s.now = now }
}

func standardChannels(stdout, stderr io.Writer) map[string]io.Writer {
	return map[string]io.Writer{
		"log":   stdout,
		"info":  stdout,
		"debug": stdout,
		"warn":  stderr,
		"error": stderr,
	}
}

// New generates one method per configuration entry. Names are processed in
// sorted order; a reserved or duplicate name fails generation at that point
// with a CollisionError, leaving no usable Set.
func New(cfgs map[string]MethodConfig, rt Runtime, opts ...Option) (*Set, error) {
	s := &Set{
		methods:  make(map[string]Func, len(cfgs)),
		channels: standardChannels(os.Stdout, os.Stderr),
		fallback: os.Stdout,
		rt:       rt,
		reserved: make(map[string]bool),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	names := make([]string, 0, len(cfgs))
	for name := range cfgs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if s.reserved[name] {
			return nil, &CollisionError{Name: name}
		}
		if _, exists := s.methods[name]; exists {
			return nil, &CollisionError{Name: name}
		}
		s.methods[name] = s.define(name, cfgs[name])
	}
	return s, nil
}

// Method returns the generated method for name.
func (s *Set) Method(name string) (Func, bool) {
	fn, ok := s.methods[name]
	return fn, ok
}

// Call invokes the named method. Calling an unknown name is a programming
// error, reported as a plain error rather than an escalation.
func (s *Set) Call(name string, args ...any) error {
	fn, ok := s.methods[name]
	if !ok {
		return fmt.Errorf("logging: no method %q", name)
	}
	return fn(args...)
}

// Names lists the generated methods in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.methods))
	for n := range s.methods {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *Set) define(name string, cfg MethodConfig) Func {
	return func(args ...any) error {
		// Quiet wins over everything, including escalation.
		if s.rt.Quiet() || (cfg.Verbose && !s.rt.Verbose()) {
			return nil
		}

		// Only top-level string arguments take color; objects and numbers
		// pass through untouched.
		out := Colorize(append([]any(nil), args...), cfg.Color).([]any)
		if strings.TrimSpace(cfg.Prefix) != "" {
			out = append([]any{Colorize(cfg.Prefix, cfg.Color)}, out...)
		}
		if cfg.Stamp {
			stamp := "[" + s.now().Format(stampLayout) + "]"
			out = append([]any{Colorize(stamp, cfg.Color)}, out...)
		}
		fmt.Fprintln(s.channel(name), out...)

		if cfg.Throws && !(s.allowForceNoThrow && s.rt.Force()) {
			return &EscalationError{Method: name, Args: args}
		}
		return nil
	}
}

// channel picks the writer for a method name, falling back to the default
// log channel when no channel carries that exact name.
func (s *Set) channel(name string) io.Writer {
	if w, ok := s.channels[name]; ok {
		return w
	}
	if w, ok := s.channels["log"]; ok {
		return w
	}
	return s.fallback
}
