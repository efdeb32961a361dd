package httpx

import (
	"fmt"
	"net/http"
	"strconv"
)

// QueryInt64 parses the named query parameter as a base-10 int64.
// A missing or empty parameter yields 0.
func QueryInt64(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", key)
	}
	return v, nil
}
