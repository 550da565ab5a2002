package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Key     string `json:"key"`
	Secret  string `json:"secret"`
	Method  string `json:"method"`
	Retries int    `json:"retries"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalName(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "codeforces.json5", expected: "codeforces.local.json5"},
		{input: "dir/telemetry.json5", expected: "dir/telemetry.local.json5"},
		{input: "noext", expected: "noext.local"},
	}
	for _, row := range table {
		require.Equal(t, row.expected, localName(row.input))
	}
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codeforces.json5"), `{
		// comments are allowed
		key: "K",
		method: "GET",
		retries: 1,
	}`)
	writeFile(t, filepath.Join(dir, "codeforces.local.json5"), `{secret: "S", method: "POST"}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "codeforces.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{Key: "K", Secret: "S", Method: "POST", Retries: 1}, cfg)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codeforces.local.json5"), `{key: "only-local"}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "codeforces.json5"))
	require.NoError(t, err)
	require.Equal(t, "only-local", cfg.Key)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, "codeforces.json5"), `{key: "from-root"}`)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	defer os.Chdir(wd)

	cfg, err := ReadRecursively[testConfig]("codeforces.json5")
	require.NoError(t, err)
	require.Equal(t, "from-root", cfg.Key)
}
