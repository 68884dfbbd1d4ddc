package versionservice

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/syspeek/syspeek/internal/utils/strutils"
)

// FixedFileInfo is the fixed-size numeric record at the root of a version
// resource (VS_FIXEDFILEINFO).
type FixedFileInfo struct {
	Signature        uint32
	StrucVersion     uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

const fixedFileInfoSize = 52

// Translation is one (language, codepage) pair from a block's translation
// table. Each pair names one localized string table in the resource.
type Translation struct {
	Language uint16
	Codepage uint16
}

// StringFieldNames lists the well-known string fields a version resource can
// carry. Most executables only fill a handful of these.
var StringFieldNames = []string{
	"CompanyName",
	"FileDescription",
	"FileVersion",
	"InternalName",
	"LegalCopyright",
	"OriginalFilename",
	"ProductName",
	"ProductVersion",
	"Comments",
	"SpecialBuild",
	"PrivateBuild",
}

// Options controls how a version resource is read.
type Options struct {
	// LanguageID selects the string table for this language, taking the
	// codepage from the block's translation table. Ignored when zero.
	LanguageID uint16

	// LanguageHex and CodepageHex select a string table directly, each as
	// four hex digits (e.g. "0409", "04b0"). When both are set they take
	// precedence over LanguageID and the translation table.
	LanguageHex string
	CodepageHex string

	// VersionOnly skips the string tables entirely; only the fixed numeric
	// record is read.
	VersionOnly bool

	// DLLVersion additionally asks the target library to self-report its
	// version through the DllGetVersion export (Windows only).
	DLLVersion bool
}

// VersionInfo holds the contents of one executable's version resource.
// Construct it with Load or ReadFile, read fields off it, discard it.
// Instances are immutable after construction and safe to share read-only.
//
// Absent data is reported as empty strings / zero values, never as errors;
// a resource that stores an explicitly empty field is indistinguishable
// from one that omits the field.
type VersionInfo struct {
	raw   []byte
	found bool
	fixed FixedFileInfo

	langHex string
	cpHex   string

	fields map[string]string

	dllVersion string
}

// Load reads a raw version resource block into a VersionInfo. A nil or
// empty block yields an instance whose accessors all return empty values.
func Load(raw []byte, opts Options) *VersionInfo {
	v := &VersionInfo{
		raw:    raw,
		fields: make(map[string]string, len(StringFieldNames)),
	}
	if len(raw) == 0 {
		return v
	}

	if value, _, ok := QuerySelector(raw, RootSelector); ok && len(value) >= fixedFileInfoSize {
		v.fixed = decodeFixedFileInfo(value)
		v.found = true
	}

	if !opts.VersionOnly {
		v.resolveTranslation(opts)
		v.queryStrings()
	}

	return v
}

// ReadFile reads the version resource of the executable or library at path.
// An empty path means the running executable. Missing version info is not an
// error; the returned VersionInfo simply reports Found() == false. The error
// covers real I/O failures only.
func ReadFile(path string, opts Options) (*VersionInfo, error) {
	raw, err := RawVersionBlock(path)
	if err != nil {
		return nil, err
	}

	v := Load(raw, opts)

	if opts.DLLVersion {
		if dv, ok := ProbeDLLVersion(path); ok {
			v.dllVersion = dv
		}
	}

	return v, nil
}

// Found reports whether the block contained a fixed version record.
func (v *VersionInfo) Found() bool { return v.found }

// Fixed returns the raw fixed version record. Zero-filled when Found() is
// false.
func (v *VersionInfo) Fixed() FixedFileInfo { return v.fixed }

// FixedFileVersion formats the numeric file version, or "" when no version
// record was found.
func (v *VersionInfo) FixedFileVersion() string {
	if !v.found {
		return ""
	}
	return FormatVersion(v.fixed.FileVersionMS, v.fixed.FileVersionLS)
}

// FixedProductVersion formats the numeric product version, or "" when no
// version record was found.
func (v *VersionInfo) FixedProductVersion() string {
	if !v.found {
		return ""
	}
	return FormatVersion(v.fixed.ProductVersionMS, v.fixed.ProductVersionLS)
}

// FileVersionWords returns the file version as its two raw dwords. ok is
// false when no version record was found.
func (v *VersionInfo) FileVersionWords() (ms, ls uint32, ok bool) {
	if !v.found {
		return 0, 0, false
	}
	return v.fixed.FileVersionMS, v.fixed.FileVersionLS, true
}

// DLLVersion returns the version a library reported through DllGetVersion,
// or "" when the probe was not requested, not supported, or failed.
func (v *VersionInfo) DLLVersion() string { return v.dllVersion }

// Language returns the resolved (language, codepage) hex pair used for
// string lookups. Either half may be empty when resolution failed.
func (v *VersionInfo) Language() (langHex, cpHex string) {
	return v.langHex, v.cpHex
}

// Field returns a string field by name ("CompanyName", "ProductVersion",
// ...). Absent fields are "".
func (v *VersionInfo) Field(name string) string { return v.fields[name] }

func (v *VersionInfo) CompanyName() string      { return v.fields["CompanyName"] }
func (v *VersionInfo) FileDescription() string  { return v.fields["FileDescription"] }
func (v *VersionInfo) FileVersion() string      { return v.fields["FileVersion"] }
func (v *VersionInfo) InternalName() string     { return v.fields["InternalName"] }
func (v *VersionInfo) LegalCopyright() string   { return v.fields["LegalCopyright"] }
func (v *VersionInfo) OriginalFilename() string { return v.fields["OriginalFilename"] }
func (v *VersionInfo) ProductName() string      { return v.fields["ProductName"] }
func (v *VersionInfo) ProductVersion() string   { return v.fields["ProductVersion"] }
func (v *VersionInfo) Comments() string         { return v.fields["Comments"] }
func (v *VersionInfo) SpecialBuild() string     { return v.fields["SpecialBuild"] }
func (v *VersionInfo) PrivateBuild() string     { return v.fields["PrivateBuild"] }

// Translations returns the block's translation table in declaration order.
func (v *VersionInfo) Translations() []Translation {
	value, _, ok := QuerySelector(v.raw, TranslationSelector)
	if !ok {
		return nil
	}

	var table []Translation
	for i := 0; i+4 <= len(value); i += 4 {
		table = append(table, Translation{
			Language: binary.LittleEndian.Uint16(value[i:]),
			Codepage: binary.LittleEndian.Uint16(value[i+2:]),
		})
	}
	return table
}

// FormatVersion formats a (most-significant, least-significant) dword pair
// as a dotted version string. The revision (low word of ls) is omitted when
// zero: 1.2.3 rather than 1.2.3.0.
func FormatVersion(ms, ls uint32) string {
	major := ms >> 16
	minor := ms & 0xffff
	build := ls >> 16
	revision := ls & 0xffff

	if revision == 0 {
		return fmt.Sprintf("%d.%d.%d", major, minor, build)
	}
	return fmt.Sprintf("%d.%d.%d.%d", major, minor, build, revision)
}

// resolveTranslation picks the (language, codepage) hex pair used to address
// string tables. Precedence: explicit hex strings, then a language override
// matched against the translation table, then the table's first entry.
// When nothing resolves, later lookups just miss and yield empty fields.
func (v *VersionInfo) resolveTranslation(opts Options) {
	if opts.LanguageHex != "" && opts.CodepageHex != "" {
		v.langHex = opts.LanguageHex
		v.cpHex = opts.CodepageHex
		return
	}

	if opts.LanguageID != 0 {
		v.langHex = fmt.Sprintf("%04x", opts.LanguageID)
		if cp, ok := v.codepageForLanguage(opts.LanguageID); ok {
			v.cpHex = fmt.Sprintf("%04x", cp)
		}
		return
	}

	// No preference given: the first table entry wins, deterministically.
	if table := v.Translations(); len(table) > 0 {
		v.langHex = fmt.Sprintf("%04x", table[0].Language)
		v.cpHex = fmt.Sprintf("%04x", table[0].Codepage)
	}
}

// codepageForLanguage scans the translation table for an entry matching the
// given language and returns its codepage.
func (v *VersionInfo) codepageForLanguage(lang uint16) (uint16, bool) {
	for _, t := range v.Translations() {
		if t.Language == lang {
			return t.Codepage, true
		}
	}
	return 0, false
}

// queryStrings reads every well-known string field under the resolved
// language/codepage. Each field misses or hits on its own.
func (v *VersionInfo) queryStrings() {
	for _, name := range StringFieldNames {
		v.fields[name] = v.queryString(name)
	}
}

// queryString looks up one string field. Values are stored padded in the
// resource, so surrounding whitespace is trimmed. Absence yields "".
func (v *VersionInfo) queryString(name string) string {
	selector := fmt.Sprintf(stringTableSelector, v.langHex, v.cpHex, name)

	value, text, ok := QuerySelector(v.raw, selector)
	if !ok {
		return ""
	}

	var s string
	if text {
		decoded, err := decodeUTF16(value)
		if err != nil {
			return ""
		}
		s = decoded
	} else {
		s = strings.TrimRight(string(value), "\x00")
	}

	return strutils.TrimWS(s)
}

func decodeFixedFileInfo(data []byte) FixedFileInfo {
	dw := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }
	return FixedFileInfo{
		Signature:        dw(0),
		StrucVersion:     dw(1),
		FileVersionMS:    dw(2),
		FileVersionLS:    dw(3),
		ProductVersionMS: dw(4),
		ProductVersionLS: dw(5),
		FileFlagsMask:    dw(6),
		FileFlags:        dw(7),
		FileOS:           dw(8),
		FileType:         dw(9),
		FileSubtype:      dw(10),
		FileDateMS:       dw(11),
		FileDateLS:       dw(12),
	}
}
