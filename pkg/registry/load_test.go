package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginDirLoaderSkipsBrokenPlugin(t *testing.T) {
	dir := t.TempDir()

	// Not a real shared object; plugin.Open must reject it.
	garbage := filepath.Join(dir, "broken.so")
	require.NoError(t, os.WriteFile(garbage, []byte("not an ELF"), 0o644))

	r := New(nil)
	require.NoError(t, r.Register(Descriptor{Name: "LampDriver", New: stubConstructor("LampDriver")}))
	r.AddLoader(PluginDirLoader(dir))

	// The broken plugin is a silent omission; the healthy set survives.
	assert.Equal(t, []string{"LampDriver"}, r.TypeNames())
	assert.NoError(t, PluginDirLoader(dir)())
}

func TestPluginDirLoaderIgnoresNonPluginEntries(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.so"), 0o755))

	loader := PluginDirLoader(dir)
	assert.NoError(t, loader())
}

func TestPluginDirLoaderMissingDir(t *testing.T) {
	loader := PluginDirLoader(filepath.Join(t.TempDir(), "nope"))

	// The loader itself reports the unreadable directory...
	assert.Error(t, loader())

	// ...and discovery swallows it like any other loader failure.
	r := New(nil)
	require.NoError(t, r.Register(Descriptor{Name: "SwitchDriver", New: stubConstructor("SwitchDriver")}))
	r.AddLoader(loader)
	assert.Equal(t, []string{"SwitchDriver"}, r.TypeNames())
}

func TestPluginDirLoaderRepeatedPasses(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.so"), []byte("junk"), 0o644))

	r := New(nil)
	r.AddLoader(PluginDirLoader(dir))

	// Repeated discovery passes must stay membership-equivalent even
	// when the directory keeps yielding a rejected file.
	first := r.TypeNames()
	second := r.TypeNames()
	assert.Equal(t, first, second)
}
