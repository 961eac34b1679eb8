package style

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sink := NewLogSink(zap.New(core))

	sink.Report(Diagnostic{Kind: KindMissingExpander, Property: "transition", Value: "opacity 1s"})

	if logs.Len() != 1 {
		t.Fatalf("expected one log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.LoggerName != "diagnostics" {
		t.Errorf("logger name = %q", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["kind"] != "missing-expander" || fields["property"] != "transition" || fields["value"] != "opacity 1s" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestFactory_LogsByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := NewFactory(nil, nil, zap.New(core))

	f.Explode(parseDecl("width: var(--w)"), "width", 0)
	entries := logs.FilterMessage("Unable to handle property").All()
	if len(entries) != 1 || entries[0].ContextMap()["kind"] != "unhandled-shape" {
		t.Errorf("expected unhandled shape to be logged, got %v", logs.All())
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	if c.Err() != nil {
		t.Fatal("empty collector must not return error")
	}

	c.Report(Diagnostic{Kind: KindInheritAtRoot, Property: "color", Value: "inherit"})
	c.Report(Diagnostic{Kind: KindUnhandledShape, Property: "width", Value: "var(--w)"})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	errs := multierr.Errors(c.Err())
	if len(errs) != 2 {
		t.Fatalf("expected 2 combined errors, got %d", len(errs))
	}
	var d Diagnostic
	if !errors.As(errs[0], &d) || d.Kind != KindInheritAtRoot {
		t.Errorf("unexpected first error %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "'width'") {
		t.Errorf("unexpected message %q", errs[1].Error())
	}

	// returned slice is a copy
	c.Diagnostics()[0].Property = "changed"
	if c.Diagnostics()[0].Property != "color" {
		t.Error("collector state changed through returned slice")
	}
}

func TestTee(t *testing.T) {
	var a, b Collector
	tee := Tee{&a, nil, &b}
	tee.Report(Diagnostic{Kind: KindMissingExpander, Property: "x"})
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("expected both sinks to receive report, got %d and %d", a.Len(), b.Len())
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{
		KindUnhandledShape:  "unhandled-shape",
		KindMissingExpander: "missing-expander",
		KindInheritAtRoot:   "inherit-at-root",
		Kind(42):            "kind(42)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
