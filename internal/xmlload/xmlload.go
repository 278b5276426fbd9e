// Package xmlload reads the ExtendScript XML document from disk and hands
// back a parsed tree. The XML dialect is encoding-unreliable in the same
// way DWScript source files are (spec section 6 calls the blobs and the
// XML both externally-sourced); this package decodes the XML with the same
// BOM-sniffing approach the teacher uses for source files
// (internal/interp/encoding.go), rather than trusting encoding/xml's
// decoder to cope with a leading byte-order mark on its own.
package xmlload

import (
	"fmt"
	"os"

	"aqwari.net/xml/xmltree"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile loads and parses an XML document, stripping a UTF-8 BOM or
// transcoding a UTF-16 BOM to UTF-8 before handing the bytes to
// xmltree.Parse.
func ReadFile(path string) (*xmltree.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes raw XML document bytes per the BOM rules above and parses
// the result into a tree.
func Parse(data []byte) (*xmltree.Element, error) {
	decoded, err := decodeBOM(data)
	if err != nil {
		return nil, err
	}
	root, err := xmltree.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

func decodeBOM(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return data[3:], nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return transformUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return transformUTF16(data, unicode.BigEndian)
	default:
		return data, nil
	}
}

func transformUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode UTF-16 XML document: %w", err)
	}
	return out, nil
}
