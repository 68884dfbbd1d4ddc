package scanservice

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	versionservice "github.com/syspeek/syspeek/internal/services/versionService"
)

// Result is one scanned binary and the version metadata read from it.
type Result struct {
	Path string
	Name string
	Size int64

	// true when the file carried a version resource
	HasVersionInfo bool

	FileVersion     string
	ProductVersion  string
	ProductName     string
	CompanyName     string
	FileDescription string
}

// Options controls a directory scan.
type Options struct {
	// Recursive walks subdirectories; .git trees are always skipped.
	Recursive bool
	// Limit caps the number of scanned binaries; 0 means unlimited.
	Limit int
	// IncludeBare keeps binaries without any version resource in the
	// results instead of dropping them.
	IncludeBare bool
	// Filter keeps only results whose name or product contains this
	// substring, case-insensitively.
	Filter string
}

// peExtensions lists file extensions worth probing for a version resource.
var peExtensions = map[string]bool{
	".exe": true,
	".dll": true,
	".ocx": true,
	".sys": true,
	".scr": true,
	".cpl": true,
	".drv": true,
}

// ScanDirectory walks a directory for PE binaries and reads each one's
// version resource. Unreadable files are skipped, not fatal.
func ScanDirectory(root string, opts Options) ([]Result, error) {
	var results []Result

	collect := func(path string, info fs.FileInfo) bool {
		if !isCandidate(path) {
			return true
		}

		result, ok := readOne(path, info)
		if !ok {
			return true
		}
		if !result.HasVersionInfo && !opts.IncludeBare {
			return true
		}
		if !matchesFilter(result, opts.Filter) {
			return true
		}

		rel, err := filepath.Rel(root, path)
		if err == nil {
			result.Path = rel
		}

		results = append(results, result)
		return opts.Limit == 0 || len(results) < opts.Limit
	}

	var err error
	if opts.Recursive {
		err = filepath.Walk(root, func(path string, info fs.FileInfo, walkErr error) error {
			if walkErr != nil {
				// Skip entries we cannot access.
				return nil
			}
			if info.IsDir() {
				if info.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			if !collect(path, info) {
				return filepath.SkipAll
			}
			return nil
		})
	} else {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, infoErr := entry.Info()
			if infoErr != nil {
				continue
			}
			if !collect(filepath.Join(root, entry.Name()), info) {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// readOne reads a single binary's version resource into a Result.
func readOne(path string, info fs.FileInfo) (Result, bool) {
	v, err := versionservice.ReadFile(path, versionservice.Options{})
	if err != nil {
		return Result{}, false
	}

	result := Result{
		Path:            path,
		Name:            info.Name(),
		Size:            info.Size(),
		HasVersionInfo:  v.Found(),
		FileVersion:     v.FixedFileVersion(),
		ProductVersion:  v.ProductVersion(),
		ProductName:     v.ProductName(),
		CompanyName:     v.CompanyName(),
		FileDescription: v.FileDescription(),
	}

	// Prefer the string-table product version when present; it often
	// carries more detail than the fixed record.
	if result.ProductVersion == "" {
		result.ProductVersion = v.FixedProductVersion()
	}

	return result, true
}

// isCandidate reports whether a file looks like a PE binary, by extension
// first and an MZ header sniff for extensionless files.
func isCandidate(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if peExtensions[ext] {
		return true
	}
	if ext != "" {
		return false
	}
	return hasMZHeader(path)
}

func hasMZHeader(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 2)
	if _, err := f.Read(header); err != nil {
		return false
	}
	return bytes.Equal(header, []byte("MZ"))
}

func matchesFilter(r Result, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.ProductName), needle) ||
		strings.Contains(strings.ToLower(r.CompanyName), needle)
}
