package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-10-19", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestNewAppBuildInfo_EmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
