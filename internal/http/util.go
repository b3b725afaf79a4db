package httpx

import (
	"net/http"
	"strconv"
	"strings"
)

// parsePathID extracts a positive integer path parameter from the request.
// Returns 0 and false when the value is missing, not a number, or not positive.
func parsePathID(r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.PathValue(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseOptionalInt parses a form value that may be empty. Returns 0 when
// the value is absent; the ok flag is false only for malformed input.
func parseOptionalInt(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, true
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}
