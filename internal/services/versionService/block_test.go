package versionservice

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode builds synthetic version resource blocks for tests, encoding the
// same node layout the Windows resource compiler emits.
type testNode struct {
	key      string
	binary   []byte
	text     string
	isText   bool
	children []testNode
}

func binNode(key string, value []byte, children ...testNode) testNode {
	return testNode{key: key, binary: value, children: children}
}

func textNode(key, value string, children ...testNode) testNode {
	return testNode{key: key, text: value, isText: true, children: children}
}

func dirNode(key string, children ...testNode) testNode {
	return testNode{key: key, children: children}
}

func (n testNode) encode() []byte {
	var buf []byte

	// Header placeholder; wLength patched at the end.
	buf = append(buf, 0, 0, 0, 0, 0, 0)

	for _, u := range utf16.Encode([]rune(n.key)) {
		buf = binary.LittleEndian.AppendUint16(buf, u)
	}
	buf = binary.LittleEndian.AppendUint16(buf, 0)
	buf = pad4(buf)

	var valueLen uint16
	if n.isText {
		units := append(utf16.Encode([]rune(n.text)), 0)
		// Text value lengths count UTF-16 characters, terminator included.
		valueLen = uint16(len(units))
		for _, u := range units {
			buf = binary.LittleEndian.AppendUint16(buf, u)
		}
		binary.LittleEndian.PutUint16(buf[4:], 1)
	} else {
		valueLen = uint16(len(n.binary))
		buf = append(buf, n.binary...)
	}

	for _, child := range n.children {
		buf = pad4(buf)
		buf = append(buf, child.encode()...)
	}

	binary.LittleEndian.PutUint16(buf, uint16(len(buf)))
	binary.LittleEndian.PutUint16(buf[2:], valueLen)
	return buf
}

func pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// fixedInfoBytes encodes a VS_FIXEDFILEINFO with the given version dwords.
func fixedInfoBytes(fileMS, fileLS, prodMS, prodLS uint32) []byte {
	buf := make([]byte, fixedFileInfoSize)
	binary.LittleEndian.PutUint32(buf[0:], 0xFEEF04BD)
	binary.LittleEndian.PutUint32(buf[4:], 0x00010000)
	binary.LittleEndian.PutUint32(buf[8:], fileMS)
	binary.LittleEndian.PutUint32(buf[12:], fileLS)
	binary.LittleEndian.PutUint32(buf[16:], prodMS)
	binary.LittleEndian.PutUint32(buf[20:], prodLS)
	return buf
}

// translationBytes encodes a VarFileInfo translation table value.
func translationBytes(pairs ...Translation) []byte {
	var buf []byte
	for _, p := range pairs {
		buf = binary.LittleEndian.AppendUint16(buf, p.Language)
		buf = binary.LittleEndian.AppendUint16(buf, p.Codepage)
	}
	return buf
}

// buildBlock assembles a full version resource block: fixed info at the
// root, one string table per translation pair, and a translation table.
func buildBlock(fixed []byte, tables map[Translation]map[string]string) []byte {
	root := binNode("VS_VERSION_INFO", fixed)

	if len(tables) > 0 {
		sfi := dirNode("StringFileInfo")
		var pairs []Translation
		for pair, fields := range tables {
			table := dirNode(hexPair(pair))
			for name, value := range fields {
				table.children = append(table.children, textNode(name, value))
			}
			sfi.children = append(sfi.children, table)
			pairs = append(pairs, pair)
		}
		root.children = append(root.children,
			sfi,
			dirNode("VarFileInfo", binNode("Translation", translationBytes(pairs...))),
		)
	}

	return root.encode()
}

func hexPair(t Translation) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 8)
	for i, v := range []uint16{t.Language, t.Codepage} {
		out[i*4+0] = hexdigits[v>>12&0xf]
		out[i*4+1] = hexdigits[v>>8&0xf]
		out[i*4+2] = hexdigits[v>>4&0xf]
		out[i*4+3] = hexdigits[v&0xf]
	}
	return string(out)
}

func TestQuerySelectorRoot(t *testing.T) {
	fixed := fixedInfoBytes(0x00010002, 0x00030004, 0x00010002, 0x00030000)
	block := buildBlock(fixed, nil)

	value, isText, ok := QuerySelector(block, RootSelector)
	require.True(t, ok)
	assert.False(t, isText)
	assert.Equal(t, fixed, value)
}

func TestQuerySelectorStringField(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0, 0, 0, 0),
		map[Translation]map[string]string{
			pair: {"CompanyName": "Initech"},
		},
	)

	value, isText, ok := QuerySelector(block, `\StringFileInfo\040904b0\CompanyName`)
	require.True(t, ok)
	assert.True(t, isText)

	decoded, err := decodeUTF16(value)
	require.NoError(t, err)
	assert.Equal(t, "Initech", decoded)
}

func TestQuerySelectorCaseInsensitiveKeys(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0, 0, 0, 0),
		map[Translation]map[string]string{
			pair: {"ProductName": "Peekaboo"},
		},
	)

	_, _, ok := QuerySelector(block, `\stringfileinfo\040904B0\productname`)
	assert.True(t, ok)
}

func TestQuerySelectorMissingField(t *testing.T) {
	pair := Translation{Language: 0x0409, Codepage: 0x04B0}
	block := buildBlock(
		fixedInfoBytes(0, 0, 0, 0),
		map[Translation]map[string]string{
			pair: {"ProductName": "Peekaboo"},
		},
	)

	_, _, ok := QuerySelector(block, `\StringFileInfo\040904b0\SpecialBuild`)
	assert.False(t, ok)
}

func TestQuerySelectorTranslationTable(t *testing.T) {
	pair := Translation{Language: 0x041D, Codepage: 0x04E4}
	block := buildBlock(
		fixedInfoBytes(0, 0, 0, 0),
		map[Translation]map[string]string{
			pair: {"ProductName": "Peekaboo"},
		},
	)

	value, _, ok := QuerySelector(block, TranslationSelector)
	require.True(t, ok)
	assert.Equal(t, translationBytes(pair), value)
}

func TestQuerySelectorMalformedInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":            {},
		"tooShort":         {0x10, 0x00, 0x00},
		"lengthPastBuffer": {0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		"unterminatedKey":  {0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x41, 0x00},
	}

	for name, block := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, ok := QuerySelector(block, RootSelector)
			assert.False(t, ok)
		})
	}
}
