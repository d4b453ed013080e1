package registry

import (
	"os"
	"path/filepath"
	"plugin"
	"sync"
)

// PluginDirLoader returns a loader that opens every Go plugin (*.so) in
// dir, letting their init functions register driver implementations.
//
// Each plugin is opened at most once per process. A file that fails to
// open (wrong toolchain, missing symbols, not a plugin at all) is skipped;
// per the registry's error policy that makes it a silent omission from
// discovery, not an error. The loader only reports a failure to read the
// directory itself, and Discover swallows that too.
func PluginDirLoader(dir string) Loader {
	var mu sync.Mutex
	opened := make(map[string]bool)

	return func() error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".so" {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if opened[path] {
				continue
			}
			// Opening runs the plugin's init functions, which is where
			// driver packages register themselves.
			if _, err := plugin.Open(path); err != nil {
				continue
			}
			opened[path] = true
		}
		return nil
	}
}
