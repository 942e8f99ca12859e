package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup for a component and keeps the first write error
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

func NewHTML(ctx context.Context, w io.Writer) *HTML {
	return &HTML{ctx: ctx, w: w}
}

// Raw writes trusted markup as is
func (h *HTML) Raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// Text writes escaped text
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

func (h *HTML) Textf(format string, args ...interface{}) {
	h.Text(fmt.Sprintf(format, args...))
}

// Attr writes ` name="value"` with the value escaped
func (h *HTML) Attr(name, value string) {
	h.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Render writes a nested component
func (h *HTML) Render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Context is the render context (locale, nonce, CSRF token)
func (h *HTML) Context() context.Context {
	return h.ctx
}

func (h *HTML) Err() error {
	return h.err
}

// Component adapts a markup function into a templ.Component
func Component(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)
		fn(h)
		return h.Err()
	})
}
