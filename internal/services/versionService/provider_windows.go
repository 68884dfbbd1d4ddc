//go:build windows
// +build windows

package versionservice

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	versionDLL = windows.NewLazySystemDLL("version.dll")
	// https://learn.microsoft.com/en-us/windows/win32/api/winver/nf-winver-getfileversioninfosizew
	procGetFileVersionInfoSizeW = versionDLL.NewProc("GetFileVersionInfoSizeW")
	// https://learn.microsoft.com/en-us/windows/win32/api/winver/nf-winver-getfileversioninfow
	procGetFileVersionInfoW = versionDLL.NewProc("GetFileVersionInfoW")
)

// RawVersionBlock returns the raw version resource of the executable or
// library at path via the version.dll API. An empty path means the running
// executable. A file without version info yields (nil, nil).
func RawVersionBlock(path string) ([]byte, error) {
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		path = exe
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	size, _, _ := procGetFileVersionInfoSizeW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		0,
	)
	if size == 0 {
		// No version resource present.
		return nil, nil
	}

	block := make([]byte, size)
	ok, _, _ := procGetFileVersionInfoW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		0,
		uintptr(len(block)),
		uintptr(unsafe.Pointer(&block[0])),
	)
	if ok == 0 {
		return nil, nil
	}

	return block, nil
}

// dllVersionInfo mirrors the DLLVERSIONINFO structure DllGetVersion fills.
type dllVersionInfo struct {
	cbSize       uint32
	majorVersion uint32
	minorVersion uint32
	buildNumber  uint32
	platformID   uint32
}

// ProbeDLLVersion loads the library at path and asks it to self-report its
// version through the well-known DllGetVersion export. Libraries without
// that export, or failing calls, report ("", false).
func ProbeDLLVersion(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return "", false
	}
	defer windows.FreeLibrary(handle)

	proc, err := windows.GetProcAddress(handle, "DllGetVersion")
	if err != nil {
		return "", false
	}

	var dvi dllVersionInfo
	dvi.cbSize = uint32(unsafe.Sizeof(dvi))

	// DllGetVersion returns an HRESULT; non-zero means failure.
	hr, _, _ := windows.SyscallN(proc, uintptr(unsafe.Pointer(&dvi)))
	if hr != 0 {
		return "", false
	}

	return fmt.Sprintf("%d.%d.%d", dvi.majorVersion, dvi.minorVersion, dvi.buildNumber), true
}
