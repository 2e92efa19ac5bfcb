package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"reviewsBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// intParam parses a required integer path parameter.
func intParam(r *http.Request, name string) (int, error) {
	raw := getParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: fmt.Sprintf("invalid value for %s: %q is not an integer", name, raw)}
	}
	return id, nil
}
