package style

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Kind of non-fatal problem found while exploding or resolving properties.
type Kind int

const (
	// KindUnhandledShape - declared value is neither primitive nor list, no
	// record is produced.
	KindUnhandledShape Kind = iota + 1
	// KindMissingExpander - property has multiple values but nothing to
	// expand it with, single record holding the list is produced.
	KindMissingExpander
	// KindInheritAtRoot - "inherit" requested on element without parent,
	// specified value is used.
	KindInheritAtRoot
)

func (k Kind) String() string {
	switch k {
	case KindUnhandledShape:
		return "unhandled-shape"
	case KindMissingExpander:
		return "missing-expander"
	case KindInheritAtRoot:
		return "inherit-at-root"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Diagnostic describes single problem. It never stops processing.
type Diagnostic struct {
	Kind     Kind
	Property string
	Value    string
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case KindUnhandledShape:
		return fmt.Sprintf("property '%s' is neither primitive nor value list, can't handle (%s)", d.Property, d.Value)
	case KindMissingExpander:
		return fmt.Sprintf("property '%s' was assigned multiple values but no expander is registered for it (%s)", d.Property, d.Value)
	case KindInheritAtRoot:
		return fmt.Sprintf("property '%s' inherits, but element has no parent, it may not be defined (%s)", d.Property, d.Value)
	default:
		return fmt.Sprintf("property '%s': %s (%s)", d.Property, d.Kind, d.Value)
	}
}

// Diagnostics receives non-fatal problem reports.
type Diagnostics interface {
	Report(d Diagnostic)
}

type nopSink struct{}

func (nopSink) Report(Diagnostic) {}

// LogSink reports diagnostics as log warnings.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink creates sink writing to log.
func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSink{log: log.Named("diagnostics")}
}

func (s *LogSink) Report(d Diagnostic) {
	s.log.Warn("Unable to handle property",
		zap.Stringer("kind", d.Kind),
		zap.String("property", d.Property),
		zap.String("value", d.Value))
}

// Collector accumulates diagnostics. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns copy of collected reports in order of arrival.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Len returns number of collected reports.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Err combines all collected reports into a single error, nil if there
// were none.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	for _, d := range c.diags {
		err = multierr.Append(err, d)
	}
	return err
}

// Tee forwards every report to all its members.
type Tee []Diagnostics

func (t Tee) Report(d Diagnostic) {
	for _, s := range t {
		if s != nil {
			s.Report(d)
		}
	}
}
