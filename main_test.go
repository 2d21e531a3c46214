package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedArgs struct {
	outDir, manifestDir, root, configFN string
	quiet                               bool
}

func runApp(t *testing.T, args ...string) capturedArgs {
	t.Helper()
	var got capturedArgs
	app := newApp(func(outDir, manifestDir, root, configFN string, quiet bool) error {
		got = capturedArgs{outDir, manifestDir, root, configFN, quiet}
		return nil
	})
	require.NoError(t, app.Run(append([]string{"lyricstamp-stage"}, args...)))
	return got
}

func TestAppReadsBuildEnvironment(t *testing.T) {
	t.Setenv("OUT_DIR", "/build/out")
	t.Setenv("CARGO_MANIFEST_DIR", "/src/app/src-tauri")

	got := runApp(t)
	assert.Equal(t, capturedArgs{outDir: "/build/out", manifestDir: "/src/app/src-tauri"}, got)
}

func TestAppFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("OUT_DIR", "/build/out")
	t.Setenv("CARGO_MANIFEST_DIR", "/src/app/src-tauri")

	got := runApp(t, "-o", "/elsewhere", "-r", "/proj", "-c", "stage.yml", "-q")
	assert.Equal(t, capturedArgs{
		outDir:      "/elsewhere",
		manifestDir: "/src/app/src-tauri",
		root:        "/proj",
		configFN:    "stage.yml",
		quiet:       true,
	}, got)
}

func TestRunRequiresOutDir(t *testing.T) {
	err := run("", filepath.Join(t.TempDir(), "src-tauri"), "", "", true)
	assert.ErrorContains(t, err, "output directory is undefined")
}

func TestRunRequiresManifestDirWithoutRoot(t *testing.T) {
	assert.Error(t, run(t.TempDir(), "", "", "", true))
}

func TestRunDerivesRootFromManifestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "web_lyricstamp.py"), []byte("X"), 0644))
	out := t.TempDir()

	require.NoError(t, run(out, filepath.Join(root, "src-tauri"), "", "", true))

	buf, err := os.ReadFile(filepath.Join(out, "resources", "web_lyricstamp.py"))
	require.NoError(t, err)
	assert.Equal(t, "X", string(buf))
}

func TestRunRootOverridesManifestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("flask\n"), 0644))
	out := t.TempDir()

	require.NoError(t, run(out, filepath.Join(t.TempDir(), "src-tauri"), root, "", true))
	assert.FileExists(t, filepath.Join(out, "resources", "requirements.txt"))
}

func TestRunWithConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "logo.svg"), []byte("<svg/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "web_lyricstamp.py"), []byte("X"), 0644))

	cfg := filepath.Join(t.TempDir(), "stage.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("resources: res\nassets:\n  - dir: assets\n"), 0644))
	out := t.TempDir()

	require.NoError(t, run(out, "", root, cfg, true))
	assert.FileExists(t, filepath.Join(out, "res", "assets", "logo.svg"))
	assert.NoFileExists(t, filepath.Join(out, "res", "web_lyricstamp.py"))
	assert.NoDirExists(t, filepath.Join(out, "resources"))
}

func TestRunMissingConfig(t *testing.T) {
	err := run(t.TempDir(), "", t.TempDir(), filepath.Join(t.TempDir(), "nope.yml"), true)
	assert.ErrorContains(t, err, "missing")
}
