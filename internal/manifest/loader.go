package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/toyz/autointerface/internal/errors"
)

// Format identifies a manifest encoding
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML           // also used for JSON, which YAML accepts as a subset
	FormatTOML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from the file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Load reads and decodes the manifest at path. The result is not validated.
func Load(path string) (*Manifest, error) {
	format := FormatFor(path)
	if format == FormatUnknown {
		return nil, errors.ManifestError(path, "unsupported manifest extension").
			WithSuggestion("Use .yaml, .yml, .json or .toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	m, err := Parse(data, format)
	if err != nil {
		if be, ok := err.(*errors.BaseError); ok {
			be.WithLocation(errors.SourceLocation{File: path})
		}
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse decodes manifest data. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			if err == io.EOF {
				return nil, errors.New(errors.ManifestErrorCode, "manifest is empty")
			}
			return nil, errors.WrapManifestError("", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.WrapManifestError("", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.Newf(errors.ManifestErrorCode, "unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.Newf(errors.ManifestErrorCode, "unsupported manifest format %s", format)
	}

	return &m, nil
}
