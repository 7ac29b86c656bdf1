package resources

import (
	"os"
	"path/filepath"
)

// the name of the file that indicates the program should store resources
// alongside the program binary
const portableIndicator = "portable.txt"

// the directory used for resources in portable mode. set by checkPortable()
var portablePath string

func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	dir := filepath.Dir(exe)

	if _, err := os.Stat(filepath.Join(dir, portableIndicator)); err != nil {
		return false
	}

	portablePath = filepath.Join(dir, "Sparkler_UserData")
	return true
}
