// Package module wires assessments into the API using modkit
package module

import (
	"net/http"

	modkit "meetsense/internal/modkit"
	"meetsense/internal/modkit/httpkit"
	str "meetsense/internal/platform/strings"
	assesshttp "meetsense/internal/services/api/assessments/http"
	assessrepo "meetsense/internal/services/api/assessments/repo"
	assesssvc "meetsense/internal/services/api/assessments/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc assesssvc.Service
}

// New constructs an assessments module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("assessments"), modkit.WithPrefix("/assessments")},
		opts...,
	)...)

	repo := assessrepo.NewPG()
	svc := assesssvc.New(deps.PG, repo, deps.CH)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAssessmentsPort{svc: svc}

	// a configured CORE_API_ADMIN_TOKEN gates the delete route
	auth := newAdminAuth(deps.Cfg.MayString("ADMIN_TOKEN", ""))

	external := b.Register
	m.register = func(r httpkit.Router) {
		assesshttp.Register(r, m.svc, auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
