// Package builtin identifies Node.js built-in modules so classifiers can
// place them in a dedicated group.
package builtin

import "strings"

// Modules lists the Node.js built-in module names
var Modules = map[string]bool{
	"assert":              true,
	"async_hooks":         true,
	"buffer":              true,
	"child_process":       true,
	"cluster":             true,
	"console":             true,
	"constants":           true,
	"crypto":              true,
	"dgram":               true,
	"diagnostics_channel": true,
	"dns":                 true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"http":                true,
	"http2":               true,
	"https":               true,
	"inspector":           true,
	"module":              true,
	"net":                 true,
	"os":                  true,
	"path":                true,
	"perf_hooks":          true,
	"process":             true,
	"punycode":            true,
	"querystring":         true,
	"readline":            true,
	"repl":                true,
	"stream":              true,
	"string_decoder":      true,
	"timers":              true,
	"tls":                 true,
	"trace_events":        true,
	"tty":                 true,
	"url":                 true,
	"util":                true,
	"v8":                  true,
	"vm":                  true,
	"wasi":                true,
	"worker_threads":      true,
	"zlib":                true,
}

// IsBuiltinModule reports whether path names a Node.js built-in module.
// A "node:" prefix always marks a built-in; otherwise the first path
// segment is checked against the module table, so subpath imports like
// "fs/promises" match too.
func IsBuiltinModule(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasPrefix(path, "node:") {
		return true
	}
	first := path
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		first = path[:idx]
	}
	return Modules[first]
}
