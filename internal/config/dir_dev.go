//go:build !prod

package config

// DefaultConfigDir returns the settings directory for development builds.
// It lives in the working directory so it is easy to inspect and reset.
func DefaultConfigDir() string {
	return ".polish-language"
}

func IsDevelopment() bool {
	return true
}
