//go:build !windows
// +build !windows

package versionservice

import (
	"debug/pe"
	"encoding/binary"
	"os"
)

// RawVersionBlock returns the raw version resource of the PE executable or
// library at path by carving it out of the file's .rsrc section. An empty
// path means the running executable, which off Windows is not a PE image,
// so it yields (nil, nil). Files without a version resource also yield
// (nil, nil); only real I/O failures surface as errors.
func RawVersionBlock(path string) ([]byte, error) {
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		path = exe
	}

	f, err := pe.Open(path)
	if err != nil {
		// Not a PE image: treated as "no version info present".
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, statErr
		}
		return nil, nil
	}
	defer f.Close()

	section := f.Section(".rsrc")
	if section == nil {
		return nil, nil
	}

	data, err := section.Data()
	if err != nil {
		return nil, err
	}

	return extractVersionResource(data, section.VirtualAddress), nil
}

// ProbeDLLVersion is the DllGetVersion probe; loading a Windows library is
// only possible on Windows, so it always reports absent here.
func ProbeDLLVersion(string) (string, bool) {
	return "", false
}

// Resource directory layout constants (IMAGE_RESOURCE_DIRECTORY and friends).
const (
	resourceDirSize      = 16
	resourceDirEntrySize = 8
	resourceDataSize     = 16

	// Resource type id for version resources (RT_VERSION).
	rtVersion = 16

	subdirectoryBit = 0x80000000
)

// extractVersionResource walks the resource directory tree in a .rsrc
// section: type RT_VERSION, first name entry, first language entry, then the
// leaf data entry. The walk mirrors how the Windows loader resolves
// FindResource with no language preference.
func extractVersionResource(rsrc []byte, sectionRVA uint32) []byte {
	typeEntry, ok := findDirEntry(rsrc, 0, rtVersion)
	if !ok || typeEntry&subdirectoryBit == 0 {
		return nil
	}

	nameEntry, ok := firstDirEntry(rsrc, typeEntry&^subdirectoryBit)
	if !ok || nameEntry&subdirectoryBit == 0 {
		return nil
	}

	langEntry, ok := firstDirEntry(rsrc, nameEntry&^subdirectoryBit)
	if !ok || langEntry&subdirectoryBit != 0 {
		// A third directory level would be malformed; give up.
		return nil
	}

	// Leaf: IMAGE_RESOURCE_DATA_ENTRY { DataRVA, Size, CodePage, Reserved }.
	offset := int(langEntry)
	if offset+resourceDataSize > len(rsrc) {
		return nil
	}
	dataRVA := binary.LittleEndian.Uint32(rsrc[offset:])
	size := binary.LittleEndian.Uint32(rsrc[offset+4:])

	if dataRVA < sectionRVA {
		return nil
	}
	start := int(dataRVA - sectionRVA)
	end := start + int(size)
	if start > len(rsrc) || end > len(rsrc) {
		return nil
	}

	return rsrc[start:end]
}

// findDirEntry scans the resource directory at dirOffset for an entry with
// the given integer id. Named entries sort first and are skipped.
func findDirEntry(rsrc []byte, dirOffset, id uint32) (uint32, bool) {
	offset := int(dirOffset)
	if offset+resourceDirSize > len(rsrc) {
		return 0, false
	}
	named := int(binary.LittleEndian.Uint16(rsrc[offset+12:]))
	ids := int(binary.LittleEndian.Uint16(rsrc[offset+14:]))

	entries := offset + resourceDirSize
	for i := named; i < named+ids; i++ {
		entry := entries + i*resourceDirEntrySize
		if entry+resourceDirEntrySize > len(rsrc) {
			return 0, false
		}
		if binary.LittleEndian.Uint32(rsrc[entry:]) == id {
			return binary.LittleEndian.Uint32(rsrc[entry+4:]), true
		}
	}
	return 0, false
}

// firstDirEntry returns the offset field of the first entry in the resource
// directory at dirOffset, named or not.
func firstDirEntry(rsrc []byte, dirOffset uint32) (uint32, bool) {
	offset := int(dirOffset)
	if offset+resourceDirSize > len(rsrc) {
		return 0, false
	}
	named := int(binary.LittleEndian.Uint16(rsrc[offset+12:]))
	ids := int(binary.LittleEndian.Uint16(rsrc[offset+14:]))
	if named+ids == 0 {
		return 0, false
	}

	entry := offset + resourceDirSize
	if entry+resourceDirEntrySize > len(rsrc) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(rsrc[entry+4:]), true
}
