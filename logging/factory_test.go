package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

type fakeRuntime struct {
	verbose, quiet, force bool
}

func (r *fakeRuntime) Verbose() bool { return r.verbose }
func (r *fakeRuntime) Quiet() bool   { return r.quiet }
func (r *fakeRuntime) Force() bool   { return r.force }

func plainColors(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	return func() time.Time { return ts }
}

func newTestSet(t *testing.T, cfgs map[string]MethodConfig, rt Runtime, opts ...Option) (*Set, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts = append([]Option{WithWriters(&stdout, &stderr), WithClock(fixedClock())}, opts...)
	s, err := New(cfgs, rt, opts...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return s, &stdout, &stderr
}

func TestCall_StampPrefixArgsOrder(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{
		"warn": {Verbose: true, Prefix: "WARN", Color: "yellow", Stamp: true},
	}
	s, _, stderr := newTestSet(t, cfgs, &fakeRuntime{verbose: true})

	if err := s.Call("warn", "disk low"); err != nil {
		t.Fatalf("Call error: %v", err)
	}

	got := stderr.String()
	want := "[2026-01-02 03:04:05] WARN disk low\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCall_VerboseGate(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{
		"debug":  {Verbose: true},
		"always": {Verbose: false},
	}

	tests := []struct {
		name       string
		rt         *fakeRuntime
		method     string
		wantOutput bool
	}{
		{"verbose method hidden by default", &fakeRuntime{}, "debug", false},
		{"verbose method shown in verbose mode", &fakeRuntime{verbose: true}, "debug", true},
		{"non-verbose method always shown", &fakeRuntime{}, "always", true},
		{"quiet hides everything", &fakeRuntime{verbose: true, quiet: true}, "always", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, stdout, _ := newTestSet(t, cfgs, tt.rt)
			if err := s.Call(tt.method, "msg"); err != nil {
				t.Fatalf("Call error: %v", err)
			}
			if got := stdout.Len() > 0; got != tt.wantOutput {
				t.Errorf("produced output = %v, want %v (buffer %q)", got, tt.wantOutput, stdout.String())
			}
		})
	}
}

func TestCall_ThrowsReturnsEscalationWithArgs(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{"fatal": {Throws: true}}
	s, stdout, _ := newTestSet(t, cfgs, &fakeRuntime{})

	err := s.Call("fatal", "bad state", 42)

	var esc *EscalationError
	if !errors.As(err, &esc) {
		t.Fatalf("Call error = %v, want EscalationError", err)
	}
	if esc.Method != "fatal" {
		t.Errorf("Method = %q, want %q", esc.Method, "fatal")
	}
	if diff := cmp.Diff([]any{"bad state", 42}, esc.Args); diff != "" {
		t.Errorf("Args (-want +got):\n%s", diff)
	}
	// Output is produced before the escalation is returned.
	if !strings.Contains(stdout.String(), "bad state") {
		t.Errorf("output missing message before escalation: %q", stdout.String())
	}
}

func TestCall_QuietSuppressesEscalation(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{"fatal": {Throws: true}}
	s, stdout, stderr := newTestSet(t, cfgs, &fakeRuntime{quiet: true})

	if err := s.Call("fatal", "bad state"); err != nil {
		t.Fatalf("quiet call should be a silent no-op, got %v", err)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Error("quiet call produced output")
	}
}

func TestCall_ForceSuppressesEscalation(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{"fatal": {Throws: true}}

	t.Run("force with allowForceNoThrow", func(t *testing.T) {
		s, stdout, _ := newTestSet(t, cfgs, &fakeRuntime{force: true}, WithForceNoThrow(true))
		if err := s.Call("fatal", "msg"); err != nil {
			t.Fatalf("Call error = %v, want nil", err)
		}
		if stdout.Len() == 0 {
			t.Error("suppressed escalation should still print")
		}
	})

	t.Run("force without allowForceNoThrow", func(t *testing.T) {
		s, _, _ := newTestSet(t, cfgs, &fakeRuntime{force: true})
		var esc *EscalationError
		if err := s.Call("fatal", "msg"); !errors.As(err, &esc) {
			t.Fatalf("Call error = %v, want EscalationError", err)
		}
	})

	t.Run("allowForceNoThrow without force", func(t *testing.T) {
		s, _, _ := newTestSet(t, cfgs, &fakeRuntime{}, WithForceNoThrow(true))
		var esc *EscalationError
		if err := s.Call("fatal", "msg"); !errors.As(err, &esc) {
			t.Fatalf("Call error = %v, want EscalationError", err)
		}
	})
}

func TestNew_ReservedNameCollision(t *testing.T) {
	cfgs := map[string]MethodConfig{
		"info":    {},
		"options": {},
	}
	_, err := New(cfgs, &fakeRuntime{}, WithReserved("options", "settings"))

	var col *CollisionError
	if !errors.As(err, &col) {
		t.Fatalf("New error = %v, want CollisionError", err)
	}
	if col.Name != "options" {
		t.Errorf("Name = %q, want %q", col.Name, "options")
	}
}

func TestChannelSelection(t *testing.T) {
	plainColors(t)
	cfgs := map[string]MethodConfig{
		"error":  {},
		"status": {}, // no channel of this name, falls back to log
	}
	s, stdout, stderr := newTestSet(t, cfgs, &fakeRuntime{})

	if err := s.Call("error", "boom"); err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if err := s.Call("status", "fine"); err != nil {
		t.Fatalf("Call error: %v", err)
	}

	if got := stderr.String(); got != "boom\n" {
		t.Errorf("stderr = %q, want %q", got, "boom\n")
	}
	if got := stdout.String(); got != "fine\n" {
		t.Errorf("stdout = %q, want %q", got, "fine\n")
	}
}

func TestChannelOverride(t *testing.T) {
	plainColors(t)
	var custom bytes.Buffer
	cfgs := map[string]MethodConfig{"audit": {}}
	s, stdout, _ := newTestSet(t, cfgs, &fakeRuntime{}, WithChannel("audit", &custom))

	if err := s.Call("audit", "entry"); err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if got := custom.String(); got != "entry\n" {
		t.Errorf("custom channel = %q, want %q", got, "entry\n")
	}
	if stdout.Len() != 0 {
		t.Error("default channel should not receive audit output")
	}
}

func TestCall_UnknownMethod(t *testing.T) {
	s, _, _ := newTestSet(t, map[string]MethodConfig{}, &fakeRuntime{})
	if err := s.Call("nope"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestNames(t *testing.T) {
	cfgs := map[string]MethodConfig{"warn": {}, "err": {}, "info": {}}
	s, err := New(cfgs, &fakeRuntime{})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []string{"err", "info", "warn"}
	if diff := cmp.Diff(want, s.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}
