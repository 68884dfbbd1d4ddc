//go:build darwin
// +build darwin

package environmentservice

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

func detectOSName() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "Darwin"
	}
	return charsToString(uname.Sysname[:])
}

func detectOSVersion() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return ""
	}
	return charsToString(uname.Release[:])
}

func detectOSDisplayName() string {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return ""
	}
	return "macOS " + strings.TrimSpace(string(out))
}

func charsToString(chars []byte) string {
	if i := strings.IndexByte(string(chars), 0); i >= 0 {
		return string(chars[:i])
	}
	return string(chars)
}
