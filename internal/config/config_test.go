package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "typescript", cfg.Format)
	assert.Equal(t, "RootType", cfg.RootName)
	assert.True(t, cfg.OptionalFields)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Empty(t, cfg.Output)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	content := `
format: pydantic
root_name: ApiResponse
optional_fields: false
max_depth: 50
`
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "pydantic", cfg.Format)
	assert.Equal(t, "ApiResponse", cfg.RootName)
	assert.False(t, cfg.OptionalFields)
	assert.Equal(t, 50, cfg.MaxDepth)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: jsdoc\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jsdoc", cfg.Format)
	assert.Equal(t, "RootType", cfg.RootName)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadConfig_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: rust\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfigWithCLI_CLIOverridesFile(t *testing.T) {
	content := `
format: jsdoc
root_name: FromFile
`
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigWithCLI(path, "pydantic", "FromCLI", 75)
	require.NoError(t, err)

	assert.Equal(t, "pydantic", cfg.Format)
	assert.Equal(t, "FromCLI", cfg.RootName)
	assert.Equal(t, 75, cfg.MaxDepth)
}

func TestLoadConfigWithCLI_DefaultCLIValuesDoNotOverride(t *testing.T) {
	content := `
format: jsdoc
root_name: FromFile
`
	path := filepath.Join(t.TempDir(), ".typeforge.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// CLI args left at their defaults let the config file win.
	cfg, err := LoadConfigWithCLI(path, DefaultFormat, DefaultRootName, DefaultMaxDepth)
	require.NoError(t, err)

	assert.Equal(t, "jsdoc", cfg.Format)
	assert.Equal(t, "FromFile", cfg.RootName)
}

func TestLoadConfigWithCLI_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", "python-typeddict", "Thing", 0)
	require.NoError(t, err)

	assert.Equal(t, "python-typeddict", cfg.Format)
	assert.Equal(t, "Thing", cfg.RootName)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadConfigWithCLI_UnsupportedCLIFormat(t *testing.T) {
	_, err := LoadConfigWithCLI("", "cobol", "Root", 0)
	assert.Error(t, err)
}

func TestFindConfigFile_SearchesUpward(t *testing.T) {
	tempDir := t.TempDir()
	subDir := filepath.Join(tempDir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	configPath := filepath.Join(tempDir, ".typeforge.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: jsdoc\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()
	require.NoError(t, os.Chdir(subDir))

	found := FindConfigFile()
	require.NotEmpty(t, found)
	// Resolve symlinks before comparing; temp dirs are often symlinked.
	expectedResolved, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	foundResolved, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, expectedResolved, foundResolved)
}

func TestNormalizeRootName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"api_response", "ApiResponse"},
		{"user-profile", "UserProfile"},
		{"RootType", "RootType"},
		{"person", "Person"},
		{"", "RootType"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRootName(tt.input))
		})
	}
}
