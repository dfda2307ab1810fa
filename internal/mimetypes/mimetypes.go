// Package mimetypes resolves Content-Type values for served files.
//
// A small override table is consulted first so that ES modules, stylesheets,
// fonts and images get the same type on every host, regardless of what the
// local registry says. Anything else falls back to the mime package.
package mimetypes

import (
	"fmt"
	"maps"
	"mime"
	"path"
	"strings"
)

// OctetStream is served for paths without an extension.
const OctetStream = "application/octet-stream"

// overrides is never written after package init.
var overrides = map[string]string{
	".html":  "text/html",
	".css":   "text/css",
	".js":    "application/javascript",
	".mjs":   "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	"":       OctetStream,
}

// Overrides returns a copy of the extension table.
func Overrides() map[string]string {
	return maps.Clone(overrides)
}

// Ext returns the lowercase extension of the last element of name.
// Leading dots belong to the name, so ".bashrc" has no extension.
func Ext(name string) string {
	base := strings.TrimLeft(path.Base(strings.ReplaceAll(name, "\\", "/")), ".")
	return strings.ToLower(path.Ext(base))
}

// Resolve returns the MIME type for name. The override table wins; otherwise
// the platform registry is asked. An empty result means the type is unknown
// and should be left to content sniffing.
func Resolve(name string) string {
	ext := Ext(name)
	if t, ok := overrides[ext]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

// fallbacks are pushed into the process-wide registry so lookups that bypass
// Resolve still agree on script and stylesheet types.
var fallbacks = []struct{ ext, typ string }{
	{".js", "application/javascript"},
	{".mjs", "application/javascript"},
	{".css", "text/css"},
	{".wasm", "application/wasm"},
}

// RegisterFallbacks registers script, stylesheet and WASM types with the mime
// package. Call it once before serving.
func RegisterFallbacks() error {
	for _, f := range fallbacks {
		if err := mime.AddExtensionType(f.ext, f.typ); err != nil {
			return fmt.Errorf("register %s: %w", f.ext, err)
		}
	}
	return nil
}
