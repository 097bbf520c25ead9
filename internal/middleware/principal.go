package middleware

import (
	"context"
	"net/http"
	"strings"
)

// PrincipalHeader carries the caller's Internet Identity principal.
// It is trusted as given; no signature is checked.
const PrincipalHeader = "X-Principal"

const maxPrincipalLength = 128

// Principal stores the X-Principal header value in the request context
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := strings.TrimSpace(r.Header.Get(PrincipalHeader))
		if len(principal) > maxPrincipalLength {
			writeError(w, http.StatusBadRequest, "invalid principal")
			return
		}
		if principal != "" {
			r = r.WithContext(context.WithValue(r.Context(), principalKey, principal))
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePrincipal rejects requests without a principal with 401.
// It must run after Principal.
func RequirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetPrincipal(r.Context()) == "" {
			writeError(w, http.StatusUnauthorized, "principal is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPrincipal retrieves the caller's principal from context, or "" for anonymous callers
func GetPrincipal(ctx context.Context) string {
	if p, ok := ctx.Value(principalKey).(string); ok {
		return p
	}
	return ""
}
