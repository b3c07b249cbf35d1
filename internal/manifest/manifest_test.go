package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcxgen/vcxgen/internal/manifest"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, manifest.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetect(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, manifest.Detect(tmpDir))

	writeManifest(t, tmpDir, "project:\n  name: demo\n")
	assert.True(t, manifest.Detect(tmpDir))
}

func TestLoad_FullManifest(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeManifest(t, tmpDir, `project:
  name: demo
  guid: "{11111111-2222-3333-4444-555555555555}"
  toolset: v143
  platform_version: "10.0"
  output: demo_monolithic.vcxproj
  final_name: demo.vcxproj
groups:
  - name: Core sources
    files:
      - src\core.c
      - src\events.c
  - name: Vendor library
    base: vendor/lib/src
    pattern: "*.c"
    subdirs:
      - win
`)

	m, err := manifest.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", m.Settings.ProjectName)
	assert.Equal(t, "{11111111-2222-3333-4444-555555555555}", m.Settings.GUID)
	assert.Equal(t, "v143", m.Settings.Toolset)
	assert.Equal(t, "10.0", m.Settings.PlatformVersion)
	assert.Equal(t, "demo_monolithic.vcxproj", m.Settings.Output)
	assert.Equal(t, "demo.vcxproj", m.Settings.FinalName)

	require.Len(t, m.Groups, 2)
	assert.Equal(t, "Core sources", m.Groups[0].Name)
	assert.Equal(t, []string{`src\core.c`, `src\events.c`}, m.Groups[0].Files)
	assert.Equal(t, "vendor/lib/src", m.Groups[1].Base)
	assert.Equal(t, "*.c", m.Groups[1].Pattern)
	assert.Equal(t, []string{"win"}, m.Groups[1].Subdirs)
}

func TestLoad_SettingsOnly(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeManifest(t, tmpDir, "project:\n  output: other.vcxproj\n")

	m, err := manifest.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "other.vcxproj", m.Settings.Output)
	assert.Empty(t, m.Settings.ProjectName)
	assert.Empty(t, m.Groups)
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeManifest(t, tmpDir, "project:\n  output: from-file.vcxproj\n")

	t.Setenv("VCXGEN_PROJECT_OUTPUT", "from-env.vcxproj")

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.vcxproj", m.Settings.Output)
}

func TestLoad_Missing(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), manifest.FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeManifest(t, tmpDir, "groups:\n  - name: [broken\n")

	_, err := manifest.Load(path)
	require.Error(t, err)
}

func TestLoad_GroupValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing name",
			content: "groups:\n  - files: [a.c]\n",
			errMsg:  "name is required",
		},
		{
			name:    "no files and no base",
			content: "groups:\n  - name: Empty\n",
			errMsg:  "declare files or a base",
		},
		{
			name:    "base without pattern",
			content: "groups:\n  - name: Lib\n    base: vendor/lib\n",
			errMsg:  "base requires a pattern",
		},
		{
			name:    "subdirs without base",
			content: "groups:\n  - name: Lib\n    files: [a.c]\n    subdirs: [win]\n",
			errMsg:  "require a base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := writeManifest(t, tmpDir, tt.content)

			_, err := manifest.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
