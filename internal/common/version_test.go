package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	defer func() {
		Version, Build, GitCommit = origVersion, origBuild, origCommit
	}()

	Version = "1.2.3"
	Build = "42"
	GitCommit = "abc1234"

	assert.Equal(t, "1.2.3 (build: 42, commit: abc1234)", GetFullVersion())
}

func TestLoadVersionFromFile_MissingFile(t *testing.T) {
	// Test binaries run from a temp dir without a .version file; the
	// compiled-in version must survive unchanged.
	orig := Version
	defer func() { Version = orig }()

	Version = "9.9.9"
	assert.Equal(t, "9.9.9", LoadVersionFromFile())
	assert.Equal(t, "9.9.9", Version)
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	assert.NotNil(t, logger)

	// Repeated calls hand back the same instance.
	assert.Equal(t, logger, GetLogger())
}
