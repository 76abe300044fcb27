package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProfileCommand_MissingFileFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "save-profile")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"file\" not set")
}

func TestSaveProfileCommand_RejectsInvalidDocument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	profilePath := filepath.Join(tmpDir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{"brand_name": "Acme"}`), 0644))

	cmd := exec.Command(binaryPath, "save-profile", "--file", profilePath)
	cmd.Env = append(os.Environ(), "BRAND_STORE_PATH="+filepath.Join(tmpDir, "brands.db"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "does not match schema")
}
