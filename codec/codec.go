// Package codec reads and writes segmented profiles in their persisted
// shape (package record) as JSON or YAML.
//
// JSON is encoded with github.com/goccy/go-json and YAML with
// gopkg.in/yaml.v3. Every decoded document is checked against the embedded
// JSON schema (schema.json) before the engine validates the partition, so
// structural mistakes are reported by field and invariant violations by the
// segment package's sentinel errors.
package codec

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellprof/record"
	"github.com/katalvlaran/cellprof/segmented"
)

// Format names a serialisation format.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	// ErrUnknownFormat indicates a format other than JSON or YAML.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrSchema indicates a document that does not match the schema.
	ErrSchema = errors.New("codec: document does not match schema")
)

//go:embed schema.json
var schema []byte

// Schema returns a copy of the embedded JSON schema.
func Schema() []byte { return bytes.Clone(schema) }

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf guesses the format of path from its extension, falling back to
// def.
func FormatOf(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return def
	}
}

// Marshal encodes sp in format f.
func Marshal(sp *segmented.Profile, f Format) ([]byte, error) {
	r := sp.ToRecord()
	switch f {
	case JSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("Marshal: %w", err)
		}
		return append(data, '\n'), nil
	case YAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("Marshal: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("Marshal: %w: %q", ErrUnknownFormat, f)
	}
}

// Unmarshal decodes a document in format f, validates it against the schema
// and rebuilds the segmented profile.
func Unmarshal(data []byte, f Format) (*segmented.Profile, error) {
	var r record.SegmentedProfile
	switch f {
	case JSON:
		if err := Validate(data); err != nil {
			return nil, fmt.Errorf("Unmarshal: %w", err)
		}
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("Unmarshal: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("Unmarshal: %w", err)
		}
		if err := ValidateRecord(r); err != nil {
			return nil, fmt.Errorf("Unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("Unmarshal: %w: %q", ErrUnknownFormat, f)
	}

	sp, err := segmented.FromRecord(r)
	if err != nil {
		return nil, fmt.Errorf("Unmarshal: %w", err)
	}

	return sp, nil
}

// Validate checks a JSON document against the embedded schema.
func Validate(data []byte) error {
	return validate(gojsonschema.NewBytesLoader(data))
}

// ValidateRecord checks a decoded record against the embedded schema.
func ValidateRecord(r record.SegmentedProfile) error {
	return validate(gojsonschema.NewGoLoader(r))
}

func validate(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

// Read decodes a segmented profile from r.
func Read(r io.Reader, f Format) (*segmented.Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return Unmarshal(data, f)
}

// Write encodes sp to w.
func Write(w io.Writer, sp *segmented.Profile, f Format) error {
	data, err := Marshal(sp, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// ReadFile decodes the file at path, choosing the format from its extension
// (JSON when unknown).
func ReadFile(path string) (*segmented.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}

	return Unmarshal(data, FormatOf(path, JSON))
}

// WriteFile encodes sp to path in format f.
func WriteFile(path string, sp *segmented.Profile, f Format) error {
	data, err := Marshal(sp, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}
