package contract

import (
	"net/url"
	"strings"
)

// BuildPath substitutes :name segments of path with values from params.
// Parameters missing from params are left as written. Values are path-escaped.
func BuildPath(path string, params map[string]string) string {
	return rewriteParams(path, func(name string) (string, bool) {
		value, ok := params[name]
		if !ok {
			return "", false
		}
		return url.PathEscape(value), true
	})
}

func rewriteParams(path string, replace func(name string) (string, bool)) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if len(segment) < 2 || segment[0] != ':' {
			continue
		}
		if value, ok := replace(segment[1:]); ok {
			segments[i] = value
		}
	}
	return strings.Join(segments, "/")
}
