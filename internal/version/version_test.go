package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	origVersion := Version
	origBuildTime := BuildTime
	origGitCommit := GitCommit
	defer func() {
		Version = origVersion
		BuildTime = origBuildTime
		GitCommit = origGitCommit
	}()

	Version = "v0.3.0"
	BuildTime = "2026-10-16"
	GitCommit = "abc1234567890"

	assert.Equal(t, "beontrack v0.3.0 (abc1234) built 2026-10-16", Info())

	GitCommit = "abc"
	assert.Equal(t, "beontrack v0.3.0 (abc) built 2026-10-16", Info())
}

func TestShort(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "v0.3.0"
	assert.Equal(t, "v0.3.0", Short())
}
