package util

import (
	"net/http"
	"strings"
)

// AdminToken extracts the admin token from the custom header, falling back
// to a bearer-style Authorization header.
func AdminToken(r *http.Request) string {
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		return token
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[len("bearer "):])
	}
	return ""
}
