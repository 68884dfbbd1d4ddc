package versionservice

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Selector paths into a version resource block. These mirror the paths
// VerQueryValue understands on Windows, so selectors built here work the same
// against a live API block or one carved out of a PE file.
const (
	RootSelector        = `\`
	TranslationSelector = `\VarFileInfo\Translation`
	stringTableSelector = `\StringFileInfo\%s%s\%s`
)

// A version resource block is a tree of variable-length nodes:
//
//	WORD  wLength      total node size in bytes, children included
//	WORD  wValueLength value size (bytes for binary, chars for text)
//	WORD  wType        0 = binary value, 1 = text value
//	WCHAR szKey[]      null-terminated UTF-16LE key
//	      padding to the next 32-bit boundary
//	      value, then more padding, then child nodes until wLength
//
// QuerySelector walks that tree without any OS help, which keeps the whole
// reader usable (and testable) on every platform.

const nodeHeaderSize = 6

type blockNode struct {
	key   string
	value []byte
	text  bool
	// children region of the raw buffer, walked lazily
	children []byte
}

// QuerySelector looks up a sub-record in a raw version resource block.
// The selector is a backslash-separated path, e.g. `\`,
// `\VarFileInfo\Translation` or `\StringFileInfo\040904b0\CompanyName`.
// Returns the record's value bytes, whether the value is UTF-16 text, and
// whether the record was found at all. Key comparison is case-insensitive,
// matching VerQueryValue.
func QuerySelector(block []byte, selector string) ([]byte, bool, bool) {
	root, ok := parseNode(block)
	if !ok {
		return nil, false, false
	}

	node := root
	for _, part := range splitSelector(selector) {
		child, found := findChild(node.children, part)
		if !found {
			return nil, false, false
		}
		node = child
	}

	return node.value, node.text, true
}

// splitSelector breaks a selector path into its key components, dropping
// empty segments so both `\` and `` address the root.
func splitSelector(selector string) []string {
	var parts []string
	for _, p := range strings.Split(selector, `\`) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// findChild scans a node's child region for a key, case-insensitively.
func findChild(children []byte, key string) (blockNode, bool) {
	rest := children
	for len(rest) >= nodeHeaderSize {
		node, ok := parseNode(rest)
		if !ok {
			break
		}

		if strings.EqualFold(node.key, key) {
			return node, true
		}

		advance := align4(int(binary.LittleEndian.Uint16(rest)))
		if advance <= 0 || advance > len(rest) {
			break
		}
		rest = rest[advance:]
	}
	return blockNode{}, false
}

// parseNode decodes the node starting at data[0]. Returns ok=false when the
// buffer is too short or internally inconsistent; malformed input is treated
// the same as an absent record.
func parseNode(data []byte) (blockNode, bool) {
	if len(data) < nodeHeaderSize {
		return blockNode{}, false
	}

	length := int(binary.LittleEndian.Uint16(data))
	valueLen := int(binary.LittleEndian.Uint16(data[2:]))
	valueType := binary.LittleEndian.Uint16(data[4:])

	if length < nodeHeaderSize || length > len(data) {
		return blockNode{}, false
	}

	node := blockNode{text: valueType == 1}

	key, keyEnd, ok := readUTF16Key(data[nodeHeaderSize:length])
	if !ok {
		return blockNode{}, false
	}
	node.key = key

	// Offset past the key's null terminator, padded to a 32-bit boundary.
	offset := align4(nodeHeaderSize + keyEnd)

	valueBytes := valueLen
	if node.text {
		// Text value lengths are counted in UTF-16 characters.
		valueBytes = valueLen * 2
	}
	if offset+valueBytes > length {
		return blockNode{}, false
	}
	node.value = data[offset : offset+valueBytes]

	childStart := align4(offset + valueBytes)
	if childStart < length {
		node.children = data[childStart:length]
	}

	return node, true
}

// readUTF16Key reads a null-terminated UTF-16LE string from the start of
// data. Returns the decoded key and the byte offset just past the
// terminator.
func readUTF16Key(data []byte) (string, int, bool) {
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			key, err := decodeUTF16(data[:i])
			if err != nil {
				return "", 0, false
			}
			return key, i + 2, true
		}
	}
	return "", 0, false
}

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeUTF16 converts UTF-16LE bytes to a Go string, dropping a trailing
// null terminator if present.
func decodeUTF16(data []byte) (string, error) {
	decoded, err := utf16Decoder.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(decoded), "\x00"), nil
}

func align4(n int) int {
	return (n + 3) &^ 3
}
