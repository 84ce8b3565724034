// Package version holds build information, set at link time:
//
//	go build -ldflags "-X github.com/tsawler/pdfact/version.GitRelease=v1.0.0"
package version

import "runtime"

var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"

	GoInfo = runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
)
