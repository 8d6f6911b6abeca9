package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryBool parses a boolean query parameter; missing or invalid values
// yield def.
func QueryBool(q url.Values, key string, def bool) bool {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// QueryString returns the trimmed value of key.
func QueryString(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}
