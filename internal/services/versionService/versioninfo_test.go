package versionservice

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		ms, ls uint32
		want   string
	}{
		{0x00010002, 0x00030000, "1.2.3"},
		{0x00010002, 0x00030004, "1.2.3.4"},
		{0x00000000, 0x00000000, "0.0.0"},
		{0x00020014, 0x0190_0000, "2.20.400"},
		{0xFFFFFFFF, 0xFFFFFFFF, "65535.65535.65535.65535"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVersion(tt.ms, tt.ls))
	}
}

func TestFormatVersionFieldCount(t *testing.T) {
	// Zero revision suppresses the fourth field, nothing else does.
	for _, ls := range []uint32{0x00030000, 0x00000000, 0xFFFF0000} {
		parts := strings.Split(FormatVersion(0x00010002, ls), ".")
		assert.Len(t, parts, 3)
	}
	for _, ls := range []uint32{0x00030001, 0x0000FFFF} {
		parts := strings.Split(FormatVersion(0x00010002, ls), ".")
		assert.Len(t, parts, 4)
	}
}

func TestLoadEmptyBlock(t *testing.T) {
	for _, raw := range [][]byte{nil, {}} {
		v := Load(raw, Options{})

		assert.False(t, v.Found())
		assert.Empty(t, v.FixedFileVersion())
		assert.Empty(t, v.FixedProductVersion())
		assert.Empty(t, v.CompanyName())

		_, _, ok := v.FileVersionWords()
		assert.False(t, ok)
	}
}

func TestLoadFixedInfo(t *testing.T) {
	block := buildBlock(fixedInfoBytes(0x00010002, 0x00030004, 0x00050006, 0x00070000), nil)

	v := Load(block, Options{})
	require.True(t, v.Found())

	assert.Equal(t, "1.2.3.4", v.FixedFileVersion())
	assert.Equal(t, "5.6.7", v.FixedProductVersion())

	ms, ls, ok := v.FileVersionWords()
	require.True(t, ok)
	assert.Equal(t, uint32(0x00010002), ms)
	assert.Equal(t, uint32(0x00030004), ls)
}

func TestLoadStringFields(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			pair: {
				"CompanyName":     "Initech",
				"FileDescription": "Peek utility",
				"ProductVersion":  "1.0.0",
			},
		},
	)

	v := Load(block, Options{})

	langHex, cpHex := v.Language()
	assert.Equal(t, "0409", langHex)
	assert.Equal(t, "04b0", cpHex)

	assert.Equal(t, "Initech", v.CompanyName())
	assert.Equal(t, "Peek utility", v.FileDescription())
	assert.Equal(t, "1.0.0", v.ProductVersion())
	// Fields the resource omits resolve to empty, not an error.
	assert.Empty(t, v.SpecialBuild())
	assert.Empty(t, v.PrivateBuild())
}

func TestLoadTrimsPaddedValues(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			pair: {"CompanyName": "  Acme Corp.  "},
		},
	)

	v := Load(block, Options{})
	assert.Equal(t, "Acme Corp.", v.CompanyName())
}

func TestLoadVersionOnly(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			pair: {"CompanyName": "Initech"},
		},
	)

	v := Load(block, Options{VersionOnly: true})

	assert.True(t, v.Found())
	assert.Equal(t, "1.0.0", v.FixedFileVersion())
	assert.Empty(t, v.CompanyName())

	langHex, cpHex := v.Language()
	assert.Empty(t, langHex)
	assert.Empty(t, cpHex)
}

func TestResolveNoTranslationTable(t *testing.T) {
	block := buildBlock(fixedInfoBytes(0x00010000, 0, 0x00010000, 0), nil)

	v := Load(block, Options{})

	langHex, cpHex := v.Language()
	assert.Empty(t, langHex)
	assert.Empty(t, cpHex)
	for _, name := range StringFieldNames {
		assert.Empty(t, v.Field(name))
	}
}

func TestResolveFirstTableEntryWins(t *testing.T) {
	first := Translation{Language: 0x0409, Codepage: 0x04B0}
	root := binNode("VS_VERSION_INFO", fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		dirNode("StringFileInfo",
			dirNode(hexPair(first), textNode("ProductName", "Peekaboo")),
		),
		dirNode("VarFileInfo",
			binNode("Translation", translationBytes(
				first,
				Translation{Language: 0x041D, Codepage: 0x04E4},
			)),
		),
	)

	v := Load(root.encode(), Options{})

	langHex, cpHex := v.Language()
	assert.Equal(t, "0409", langHex)
	assert.Equal(t, "04b0", cpHex)
	assert.Equal(t, "Peekaboo", v.ProductName())
}

func TestResolveLanguageOverride(t *testing.T) {
	english := Translation{Language: 0x0409, Codepage: 0x04B0}
	norwegian := Translation{Language: 0x041D, Codepage: 0x04E4}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			english:   {"ProductName": "Peekaboo"},
			norwegian: {"ProductName": "Tittei"},
		},
	)

	v := Load(block, Options{LanguageID: 0x041D})

	langHex, cpHex := v.Language()
	assert.Equal(t, "041d", langHex)
	assert.Equal(t, "04e4", cpHex)
	assert.Equal(t, "Tittei", v.ProductName())
}

func TestResolveLanguageOverrideNotInTable(t *testing.T) {
	english := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			english: {"ProductName": "Peekaboo"},
		},
	)

	v := Load(block, Options{LanguageID: 0x040C})

	// Language resolves to the request, codepage stays unresolved. String
	// lookups then just miss.
	langHex, cpHex := v.Language()
	assert.Equal(t, "040c", langHex)
	assert.Empty(t, cpHex)
	assert.Empty(t, v.ProductName())
}

func TestResolveExplicitPairBypassesTable(t *testing.T) {
	english := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{
			english: {"ProductName": "Peekaboo"},
		},
	)

	v := Load(block, Options{
		LanguageHex: "0409",
		CodepageHex: "04b0",
		// Explicit pair wins over the override.
		LanguageID: 0x041D,
	})

	langHex, cpHex := v.Language()
	assert.Equal(t, "0409", langHex)
	assert.Equal(t, "04b0", cpHex)
	assert.Equal(t, "Peekaboo", v.ProductName())
}

func TestResolveExplicitPairWithEmptyTable(t *testing.T) {
	// No translation table at all; the explicit pair is still used verbatim.
	root := binNode("VS_VERSION_INFO", fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		dirNode("StringFileInfo",
			dirNode("040904b0", textNode("CompanyName", "Initech")),
		),
	)

	v := Load(root.encode(), Options{LanguageHex: "0409", CodepageHex: "04b0"})
	assert.Equal(t, "Initech", v.CompanyName())
}

func TestLoadMissingRootRecord(t *testing.T) {
	// A block whose root carries no fixed record: version flag stays off
	// even though string tables parse fine.
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	root := binNode("VS_VERSION_INFO", nil,
		dirNode("StringFileInfo",
			dirNode(hexPair(pair), textNode("CompanyName", "Initech")),
		),
		dirNode("VarFileInfo", binNode("Translation", translationBytes(pair))),
	)

	v := Load(root.encode(), Options{})

	assert.False(t, v.Found())
	assert.Empty(t, v.FixedFileVersion())
	// String side is independent of the fixed record.
	assert.Equal(t, "Initech", v.CompanyName())
}

func TestTranslationsOrder(t *testing.T) {
	pairs := []Translation{
		{Language: 0x0409, Codepage: 0x04B0},
		{Language: 0x041D, Codepage: 0x04E4},
		{Language: 0x040C, Codepage: 0x04E4},
	}
	root := binNode("VS_VERSION_INFO", fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		dirNode("VarFileInfo", binNode("Translation", translationBytes(pairs...))),
	)

	v := Load(root.encode(), Options{VersionOnly: true})
	assert.Equal(t, pairs, v.Translations())
}

func TestFieldAccessorsCoverKnownNames(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	fields := make(map[string]string, len(StringFieldNames))
	for i, name := range StringFieldNames {
		fields[name] = fmt.Sprintf("value-%d", i)
	}

	block := buildBlock(
		fixedInfoBytes(0x00010000, 0, 0x00010000, 0),
		map[Translation]map[string]string{pair: fields},
	)

	v := Load(block, Options{})
	for name, want := range fields {
		assert.Equal(t, want, v.Field(name), name)
	}
}
