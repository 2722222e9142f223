package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat parses a format name case-insensitively. "yml" is YAML.
// The empty string parses to the empty Format ("not set").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Detect picks the format for path: explicit wins, then the file extension,
// then fallback. An empty fallback means TOML.
func Detect(path string, explicit, fallback Format) Format {
	if explicit != "" {
		return explicit
	}
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil && f != "" {
		return f
	}
	if fallback != "" {
		return fallback
	}

	return TOML
}
