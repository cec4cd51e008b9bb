package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, "universityswings", info.Name)
	assert.Equal(t, "dev", info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGet_ReflectsLinkerOverrides(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Get().Version)
	assert.Contains(t, Get().String(), "universityswings v1.2.3")
}
