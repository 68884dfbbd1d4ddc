//go:build windows
// +build windows

package environmentservice

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

func detectOSName() string {
	return "Windows"
}

func detectOSVersion() string {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d (Build %d)", major, minor, build)
}

func detectOSDisplayName() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return ""
	}

	// DisplayVersion carries the marketing release (e.g. "23H2") on
	// Windows 10 and later.
	if displayVersion, _, err := k.GetStringValue("DisplayVersion"); err == nil && displayVersion != "" {
		return productName + " " + displayVersion
	}
	return productName
}
