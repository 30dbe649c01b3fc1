package logger

import (
	"log/slog"
	"sort"

	"go.trai.ch/zerr"
)

// metadata collects the zerr key/value pairs attached anywhere in err's tree,
// following both single and multi-error Unwrap.
// Outer values win over inner ones for the same key.
func metadata(err error) []any {
	seen := make(map[string]any)
	collectMetadata(err, seen)

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, seen[k]))
	}
	return attrs
}

func collectMetadata(err error, seen map[string]any) {
	if err == nil {
		return
	}

	if zErr, ok := err.(*zerr.Error); ok {
		for k, v := range zErr.Metadata() {
			if _, exists := seen[k]; !exists {
				seen[k] = v
			}
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		collectMetadata(u.Unwrap(), seen)
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			collectMetadata(inner, seen)
		}
	}
}
