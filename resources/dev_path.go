//go:build !release
// +build !release

package resources

const configDir = ".sparkler"

func resourcePath() (string, error) {
	return configDir, nil
}
