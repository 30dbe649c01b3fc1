package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/build"
)

func TestInfo(t *testing.T) {
	version, commit := build.Version, build.Commit
	t.Cleanup(func() {
		build.Version, build.Commit = version, commit
	})

	build.Version, build.Commit = "1.2.0", ""
	assert.Equal(t, "1.2.0", build.Info())

	build.Commit = "abc1234"
	assert.Equal(t, "1.2.0 (abc1234)", build.Info())
}
