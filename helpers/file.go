package helpers

import (
	"os"
	"path/filepath"
	"strings"
)

// used by Open, relative paths are resolved from here
var rootEnv string

func init() {
	rootEnv = GetenvOr("ROOT", ".")
}

// Open opens name as is if absolute, or relative to EZPLOT_ROOT
func Open(name string) (*os.File, error) {
	return os.Open(Resolve(name))
}

func Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(rootEnv, name)
}

// EnsureDir creates the folder of a file prefix like "out/fig" (here "out")
func EnsureDir(prefix string) error {
	dir := filepath.Dir(prefix)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// TrimExt removes a known image extension so that "fig.png" and "fig" target
// the same files
func TrimExt(path string, known []string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, k := range known {
		if strings.EqualFold(ext, k) {
			return strings.TrimSuffix(path, filepath.Ext(path))
		}
	}
	return path
}

func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
