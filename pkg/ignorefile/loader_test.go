package ignorefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// =============================================================================
// Load
// =============================================================================

func TestLoad_ReadsIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefaultName, "*.pyc\n__pycache__/\n")

	spec, err := Load(root)
	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.Equal(t, 2, spec.RuleCount())
	assert.True(t, spec.Match("main.pyc", false))
	assert.True(t, spec.Match("__pycache__/cache.pyc", false))
	assert.False(t, spec.Match("main.py", false))
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	spec, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, spec)

	// A nil spec excludes nothing.
	assert.False(t, spec.Match("anything.pyc", false))
}

func TestLoad_ReadFailureIsAnError(t *testing.T) {
	root := t.TempDir()
	// The ignore file name pointing at a directory fails the read
	// without being a missing-file case.
	require.NoError(t, os.Mkdir(filepath.Join(root, DefaultName), 0o755))

	spec, err := Load(root)
	assert.Error(t, err)
	assert.Nil(t, spec)
}

func TestLoad_IgnoreFileNotSelfExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefaultName, "*.pyc\n")

	spec, err := Load(root)
	require.NoError(t, err)
	assert.False(t, spec.Match(DefaultName, false))
}

// =============================================================================
// Options
// =============================================================================

func TestLoadWithOptions_NameOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".shipignore", "*.tmp\n")

	spec, err := LoadWithOptions(root, Options{Name: ".shipignore"})
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.True(t, spec.Match("scratch.tmp", false))
}

func TestLoadWithOptions_BasePatternsFirst(t *testing.T) {
	root := t.TempDir()
	// The per-root file can re-include what the base patterns exclude.
	writeFile(t, root, DefaultName, "!important.log\n")

	spec, err := LoadWithOptions(root, Options{BasePatterns: []string{"*.log"}})
	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.True(t, spec.Match("debug.log", false))
	assert.False(t, spec.Match("important.log", false))
}

func TestLoadWithOptions_BasePatternsWithoutFile(t *testing.T) {
	spec, err := LoadWithOptions(t.TempDir(), Options{BasePatterns: []string{".git/", "*.swp"}})
	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.True(t, spec.Match(".git/config", false))
	assert.True(t, spec.Match("file.swp", false))
	assert.False(t, spec.Match("main.go", false))
}

// =============================================================================
// Project config
// =============================================================================

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ConfigName, `package:
  exclude:
    - "*.tmp"
    - "secrets/"
  ignore_file: .shipignore
`)

	cfg, err := LoadConfig(root)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"*.tmp", "secrets/"}, cfg.Package.Exclude)
	assert.Equal(t, ".shipignore", cfg.Package.IgnoreFile)
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_Malformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ConfigName, "package: [not: a, mapping\n")

	cfg, err := LoadConfig(root)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithConfig_ComposesExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ConfigName, `package:
  exclude:
    - "*.tmp"
`)
	writeFile(t, root, DefaultName, "*.pyc\n!keep.tmp\n")

	spec, err := LoadWithConfig(root)
	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.True(t, spec.Match("scratch.tmp", false), "config exclude applies")
	assert.True(t, spec.Match("a.pyc", false), "ignore file applies")
	assert.False(t, spec.Match("keep.tmp", false), "ignore file overrides config excludes")
}

func TestLoadWithConfig_NoConfigFallsBack(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefaultName, "*.log\n")

	spec, err := LoadWithConfig(root)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.True(t, spec.Match("x.log", false))
}
