package cmd

// SupportedOS is the only GOOS scanzip runs on; the fixed roots and drive
// letters assume a Windows user profile.
const SupportedOS = "windows"

// UnsupportedMessage is printed before exiting on any other platform.
const UnsupportedMessage = "Only supported on Windows"

// Supported reports whether goos is SupportedOS.
func Supported(goos string) bool {
	return goos == SupportedOS
}
