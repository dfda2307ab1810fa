package server

import (
	"errors"
	"path"
	"strings"
)

var errTraversal = errors.New("path traversal attempt detected")

// validatePath rejects request paths that climb above the served root and
// returns the cleaned, rooted form of the rest. Dot segments that stay
// inside the root are resolved, not rejected.
func validatePath(urlPath string) (string, error) {
	// Backslashes are separators on Windows hosts, so count them for the
	// depth check only; the returned name keeps them as file name bytes.
	depth := 0
	for _, elem := range strings.Split(strings.ReplaceAll(urlPath, "\\", "/"), "/") {
		switch elem {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return "", errTraversal
			}
		default:
			depth++
		}
	}

	return path.Clean("/" + urlPath), nil
}
