package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// ScriptName is the file that holds the script for event.
func ScriptName(event int) string {
	return fmt.Sprintf("event_%04d.tengo", event)
}

// LoadScript reads a script, preferring the on-disk copy so edits are picked up by
// hot reload.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	data, err := ScriptsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: script %s: %w", clean, err)
	}
	return data, nil
}

//go:embed *.yaml
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
		}
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
