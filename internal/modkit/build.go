package modkit

import (
	"net/http"

	"biblia/internal/modkit/httpkit"
	str "biblia/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register attaches caller supplied endpoints, never nil
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base carries the mount plumbing every module repeats. Modules embed it and
// set Routes to their own registration func
type Base struct {
	Built
	Routes func(httpkit.Router)
	ports  any
}

// NewBase builds a Base from defaults followed by caller options
func NewBase(defaults []Option, opts ...Option) Base {
	return Base{Built: Build(append(defaults, opts...)...)}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (b *Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, func(rr httpkit.Router) {
		if b.Routes != nil {
			b.Routes(rr)
		}
		b.Register(rr)
	})
}

// Name returns the module name
func (b *Base) Name() string { return str.MustString(b.Built.Name, "module name") }

// Ports returns what the module exported, falling back to injected ports
func (b *Base) Ports() any {
	if b.ports != nil {
		return b.ports
	}
	return b.Built.Ports
}

// Export sets the module's own port set
func (b *Base) Export(p any) { b.ports = p }

// Injected returns the ports handed in via WithPorts
func (b *Base) Injected() any { return b.Built.Ports }
