//go:build linux
// +build linux

package environmentservice

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func detectOSName() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "Linux"
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
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(line[len("PRETTY_NAME="):], "\"")
		}
	}
	return ""
}

func charsToString(chars []byte) string {
	if i := strings.IndexByte(string(chars), 0); i >= 0 {
		return string(chars[:i])
	}
	return string(chars)
}
