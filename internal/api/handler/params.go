package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hexforge/catan-go/internal/model"
)

// pathID parses an integer path variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	return id, nil
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// pagination extracts the skip/limit query parameters with the API defaults
func pagination(r *http.Request) (skip, limit int, err error) {
	skip, err = queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", 100)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

// resourceSetFromWire converts a resource-count map from a request body,
// rejecting unknown resource names
func resourceSetFromWire(m map[string]int) (model.ResourceSet, error) {
	set := model.NewResourceSet()
	for name, count := range m {
		res, ok := model.ParseResource(name)
		if !ok {
			return nil, NewValidationError(fmt.Sprintf("unknown resource %q", name))
		}
		set[res] = count
	}
	return set, nil
}
