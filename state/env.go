// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"cascade/config"
	"cascade/style"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// CodePage is used to decode input documents, nil means input is utf-8
	CodePage encoding.Encoding
	// Collected gathers diagnostics of all processed declarations
	Collected *style.Collector

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// SetCodePage selects input encoding by its WHATWG name or label.
func (e *LocalEnv) SetCodePage(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		e.CodePage = nil
		return nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return fmt.Errorf("unknown input encoding %q: %w", name, err)
	}
	e.CodePage = enc
	return nil
}

// Input wraps r with decoder for selected code page. Unicode BOM, when
// present, takes precedence over code page.
func (e *LocalEnv) Input(r io.Reader) io.Reader {
	fallback := encoding.Nop
	if e.CodePage != nil {
		fallback = e.CodePage
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback.NewDecoder()))
}

// Diagnostics returns sink which logs every diagnostic and keeps it for
// later inspection.
func (e *LocalEnv) Diagnostics() style.Diagnostics {
	if e.Collected == nil {
		e.Collected = &style.Collector{}
	}
	return style.Tee{e.Collected, style.NewLogSink(e.Log)}
}

// Failed reports collected diagnostics as error when strict processing is
// requested.
func (e *LocalEnv) Failed() error {
	if e.Cfg == nil || !e.Cfg.Resolve.Strict || e.Collected == nil || e.Collected.Len() == 0 {
		return nil
	}
	return fmt.Errorf("%d problem(s) reported while processing: %w", e.Collected.Len(), e.Collected.Err())
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
