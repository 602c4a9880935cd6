package transport

import (
	"strings"
)

// parseBearer extracts the token from an `Authorization: Bearer <token>` value.
func parseBearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	if token == "undefined" {
		return ""
	}
	return token
}
