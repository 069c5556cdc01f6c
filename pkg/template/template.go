// Package template provides literal placeholder substitution for HTML templates.
//
// This is intentionally plain text substitution, not a templating language:
// no conditionals, no loops, no escaping, no recursive resolution.
package template

import (
	"fmt"
	"strings"
)

// Context is an insertion-ordered mapping from placeholder name to value.
// Setting an existing key overwrites its value in place, so the last-applied
// value wins while the original position is kept.
type Context struct {
	keys   []string
	values map[string]string
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]string)}
}

// Set stores the string form of value under key.
func (c *Context) Set(key string, value interface{}) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = fmt.Sprint(value)
}

// Get returns the value for key and whether it is present.
func (c *Context) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of entries.
func (c *Context) Len() int {
	return len(c.keys)
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Resolve replaces every literal occurrence of {{key}} in tpl with the value
// stored under key. Placeholders without a matching key are left verbatim;
// keys without a matching placeholder are ignored. Substitution is a single
// left-to-right pass: a value that itself contains {{x}} is not re-resolved.
func Resolve(tpl string, ctx *Context) string {
	if ctx == nil || len(ctx.keys) == 0 {
		return tpl
	}

	var b strings.Builder
	b.Grow(len(tpl))

	for len(tpl) > 0 {
		open := strings.Index(tpl, "{{")
		if open < 0 {
			b.WriteString(tpl)
			break
		}
		tail := strings.Index(tpl[open+2:], "}}")
		if tail < 0 {
			b.WriteString(tpl)
			break
		}

		name := tpl[open+2 : open+2+tail]
		end := open + 2 + tail + 2

		if value, ok := ctx.values[name]; ok {
			b.WriteString(tpl[:open])
			b.WriteString(value)
			tpl = tpl[end:]
		} else {
			// Not a known placeholder; emit the opening brace and rescan
			// so that nested tokens like {{a{{b}} still match {{b}}.
			b.WriteString(tpl[:open+1])
			tpl = tpl[open+1:]
		}
	}

	return b.String()
}
