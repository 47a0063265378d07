package fares

import (
	"net/http"
	"strings"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// queryParams flattens the request query to a lowercase-keyed map of
// trimmed first values.
func queryParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[lower(k)] = strings.TrimSpace(v[0])
		}
	}
	return params
}

func requireParams(params map[string]string, names ...string) error {
	for _, name := range names {
		if params[name] == "" {
			return &QueryError{Msg: "Missing required parameter: " + name + "."}
		}
	}
	return nil
}

func boolParam(params map[string]string, name string) bool {
	switch strings.ToLower(params[name]) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func lower(s string) string {
	bs := []rune(s)
	for i, r := range bs {
		if r >= 'A' && r <= 'Z' {
			bs[i] = r + 32
		}
	}
	return string(bs)
}
