package dom

import (
	"go.uber.org/zap"

	"cascade/style"
)

// inherited lists properties children take from their parent when they do
// not declare them.
var inherited = map[string]struct{}{
	"border-collapse":     {},
	"border-spacing":      {},
	"caption-side":        {},
	"color":               {},
	"cursor":              {},
	"direction":           {},
	"empty-cells":         {},
	"font-family":         {},
	"font-size":           {},
	"font-style":          {},
	"font-variant":        {},
	"font-weight":         {},
	"hyphens":             {},
	"letter-spacing":      {},
	"line-height":         {},
	"list-style-image":    {},
	"list-style-position": {},
	"list-style-type":     {},
	"orphans":             {},
	"quotes":              {},
	"text-align":          {},
	"text-indent":         {},
	"text-transform":      {},
	"visibility":          {},
	"white-space":         {},
	"widows":              {},
	"word-spacing":        {},
}

// IsInherited reports if property is inherited by default.
func IsInherited(name string) bool {
	_, ok := inherited[name]
	return ok
}

// absolute font size keywords relative to medium
var fontSizeKeywords = map[string]float64{
	"xx-small": 3. / 5.,
	"x-small":  3. / 4.,
	"small":    8. / 9.,
	"medium":   1,
	"large":    6. / 5.,
	"x-large":  3. / 2.,
	"xx-large": 2,
}

const fontSizeStep = 1.2

// Options define presentation environment.
type Options struct {
	RootFontSize   float64 // px, used for rem and "medium"
	ViewportWidth  float64 // px
	ViewportHeight float64 // px
}

// Resolver computes property values of every element of the document.
type Resolver struct {
	factory *style.Factory
	diag    style.Diagnostics
	opts    Options
	log     *zap.Logger
}

func NewResolver(factory *style.Factory, diag style.Diagnostics, opts Options, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if diag == nil {
		diag = style.NewLogSink(log)
	}
	if factory == nil {
		factory = style.NewFactory(style.NewRegistry(), diag, log)
	}
	if opts.RootFontSize <= 0 {
		opts.RootFontSize = 16
	}
	return &Resolver{factory: factory, diag: diag, opts: opts, log: log.Named("resolver")}
}

// Resolve walks the document root to leaves and sets Style of every element.
func (r *Resolver) Resolve(doc *Document) {
	seq := 0
	doc.Walk(func(e *Element, _ int) bool {
		seq = r.resolveElement(e, seq)
		return true
	})
}

func (r *Resolver) resolveElement(e *Element, seq int) int {
	props, next := r.factory.ExplodeAll(e.Declaration, seq)

	st := NewStyle()
	st.Add(props...)

	var (
		parent       *Style
		sameFontSize bool
	)
	if e.Parent != nil {
		parent = e.Parent.Style
		for _, name := range parent.Names() {
			if _, ok := st.Get(name); ok || !IsInherited(name) {
				continue
			}
			p, _ := parent.Get(name)
			st.Add(p.CopyForInherit())
			sameFontSize = sameFontSize || name == "font-size"
		}
	}

	ctx := &elementContext{parent: parent, opts: r.opts}
	ctx.parentFontSize = r.opts.RootFontSize
	if parent != nil {
		// zero is a valid size
		ctx.parentFontSize = parent.fontSize
	}

	// everything else depends on own font size
	ctx.fontSize = ctx.parentFontSize
	if p, ok := st.Get("font-size"); ok {
		p.Resolve(ctx, r.diag)
		// inherited relative keywords must not be applied twice
		if !sameFontSize && !p.Specified().ForcedInherit() {
			ctx.fontSize = fontSizePx(p.Computed(), ctx.parentFontSize, r.opts.RootFontSize)
		}
	}
	st.fontSize = ctx.fontSize
	for _, name := range st.Names() {
		p, _ := st.Get(name)
		p.Resolve(ctx, r.diag)
	}

	e.Style = st
	r.log.Debug("Element style resolved",
		zap.String("element", e.Name),
		zap.Int("properties", st.Len()),
		zap.Float64("font-size", ctx.fontSize))
	return next
}

// fontSizePx converts computed font size to pixels, falls back to parent's
// size when it could not be done.
func fontSizePx(v style.Value, parent, root float64) float64 {
	if px, ok := v.ToPixels(); ok {
		return px
	}
	if v.Unit() == style.UnitIdent {
		switch kw := v.Keyword(); kw {
		case "larger":
			return parent * fontSizeStep
		case "smaller":
			return parent / fontSizeStep
		default:
			if k, ok := fontSizeKeywords[kw]; ok {
				return k * root
			}
		}
	}
	return parent
}

// elementContext resolves properties of a single element.
type elementContext struct {
	parent         *Style // nil for document root
	opts           Options
	parentFontSize float64
	fontSize       float64
}

// Parent returns parent's record of the property. When parent does not carry
// one, the property has its initial value there or, if that is unknown, the
// "initial" keyword.
func (c *elementContext) Parent(name string) (*style.Property, bool) {
	if c.parent == nil {
		return nil, false
	}
	if p, ok := c.parent.Get(name); ok {
		return p, true
	}
	v, ok := style.InitialValue(name)
	if !ok {
		v = style.Keyword("initial")
	}
	p := style.NewProperty(name, -1, v)
	p.Resolve(nil, nil)
	return p, true
}

func (c *elementContext) Compute(name string, v style.Value) (style.Value, bool) {
	m, ok := v.Magnitude()
	if !ok {
		return v, false
	}

	// font size is relative to parent's, everything else to element's own
	base := c.fontSize
	if name == "font-size" {
		base = c.parentFontSize
	}

	switch v.Unit() {
	case style.UnitEm:
		return style.Px(m * base), true
	case style.UnitEx:
		return style.Px(m * base / 2), true
	case style.UnitRem:
		return style.Px(m * c.opts.RootFontSize), true
	case style.UnitVw:
		return c.viewport(m, c.opts.ViewportWidth)
	case style.UnitVh:
		return c.viewport(m, c.opts.ViewportHeight)
	case style.UnitVmin:
		return c.viewport(m, min(c.opts.ViewportWidth, c.opts.ViewportHeight))
	case style.UnitVmax:
		return c.viewport(m, max(c.opts.ViewportWidth, c.opts.ViewportHeight))
	case style.UnitPercent:
		switch name {
		case "font-size", "line-height":
			return style.Px(m * base / 100), true
		}
		// needs containing block dimensions
		return v, false
	}
	return v, false
}

func (c *elementContext) viewport(m, dim float64) (style.Value, bool) {
	if dim <= 0 {
		return style.Value{}, false
	}
	return style.Px(m * dim / 100), true
}
