// In file: internal/version/version.go
// Package version tracks the versions of the pipeline's behavioral
// components so cached responses are invalidated whenever any of them
// changes.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions captures the current version of each part of the
// pipeline that affects response content. Bump the relevant version when
// changing tool schemas, routing rules, or prompt text.
type ComponentVersions struct {
	Tools   string
	Router  string
	Prompts string
}

// Current returns the versions in effect for this build.
func Current() ComponentVersions {
	return ComponentVersions{
		Tools:   "v1.0",
		Router:  "v1.0",
		Prompts: "v1.0",
	}
}

// GenerateVersionedCacheKey builds a cache key that incorporates the query,
// its context, and the current component versions, so stale entries are
// never served after a behavior change.
func GenerateVersionedCacheKey(prefix, query, contextText string) string {
	h := sha256.Sum256([]byte(query + "\x00" + contextText))
	v := Current()
	return fmt.Sprintf("%s:%s:tv%s_rv%s_pv%s",
		prefix, hex.EncodeToString(h[:]), v.Tools, v.Router, v.Prompts)
}
