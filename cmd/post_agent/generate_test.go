package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_MissingPlatformFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--request", "post about eclipses")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"platform\" not set")
}

func TestGenerateCommand_MissingMaterial(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--platform", "twitter")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "at least one of --url and --request")
}

func TestGenerateCommand_UnsupportedPlatform(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--platform", "tiktok",
		"--request", "post about eclipses")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported platform")
}

func TestResolvePlatforms(t *testing.T) {
	platforms, err := resolvePlatforms([]string{"X", "LinkedIn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"twitter", "linkedin"}, platforms)

	platforms, err = resolvePlatforms([]string{"all"})
	require.NoError(t, err)
	assert.Len(t, platforms, 3)

	_, err = resolvePlatforms([]string{"tiktok"})
	assert.Error(t, err)
}
