//go:build !windows && !darwin

package resources

// DefaultPlatformOptions returns the rasterizer options of the host platform.
func DefaultPlatformOptions() FontInstancePlatformOptions { return DefaultFreeTypeFontOptions() }
