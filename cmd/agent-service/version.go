// In file: cmd/agent-service/version.go
package main

import (
	"fmt"
	"runtime"

	pipelineversion "agent-ui-service/internal/version"
)

var (
	buildVersion = "dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

// BuildInfo describes this binary: build metadata plus the pipeline
// component versions baked into cache keys, so logs show exactly which
// tool/router/prompt revisions served a request.
type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string

	Pipeline pipelineversion.ComponentVersions
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   buildVersion,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Pipeline:  pipelineversion.Current(),
	}
}
