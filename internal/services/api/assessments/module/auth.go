package module

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "meetsense/internal/platform/errors"
	"meetsense/internal/platform/net/middleware"
)

// staticTokenAuth guards destructive routes with a single shared bearer token
// it satisfies middleware.AuthPort, there is no user store behind it
type staticTokenAuth struct{ token string }

// newAdminAuth returns nil when no token is configured, callers then mount
// the guarded routes without auth
func newAdminAuth(token string) middleware.AuthPort {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return staticTokenAuth{token: token}
}

func (a staticTokenAuth) Parse(r *http.Request) (string, string, error) {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefix) {
		return "", "", perr.Unauthorizedf("missing bearer token")
	}
	got := strings.TrimPrefix(h, prefix)
	if subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) != 1 {
		return "", "", perr.Unauthorizedf("invalid admin token")
	}
	return "admin", "", nil
}
