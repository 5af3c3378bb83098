package document

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v3"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	IndentionStep:          2,
}.Froze()

// Encode writes doc to w in the requested encoding. Records are always
// emitted in ascending id order.
func Encode(w io.Writer, doc *Document, enc Encoding) error {
	if doc == nil {
		return fmt.Errorf("encoding document: nil document")
	}
	switch enc {
	case JSON:
		return encodeJSON(w, doc)
	case YAML, "":
		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("unsupported encoding %q", enc)
	}
}

func encodeYAML(w io.Writer, doc *Document) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// encodeJSON streams the document by hand so that record keys follow
// numeric id order; map encoders sort keys as strings ("10" before "2").
func encodeJSON(w io.Writer, doc *Document) error {
	s := jsoniter.NewStream(jsonAPI, w, 512)

	s.WriteObjectStart()
	s.WriteObjectField("format_version")
	s.WriteString(doc.FormatVersion)
	s.WriteMore()
	s.WriteObjectField("entity")
	s.WriteString(doc.Entity)
	if !doc.ExportedAt.IsZero() {
		s.WriteMore()
		s.WriteObjectField("exported_at")
		s.WriteString(doc.ExportedAt.Format(time.RFC3339Nano))
	}
	s.WriteMore()
	s.WriteObjectField("records")

	ids := doc.IDs()
	if len(ids) == 0 {
		s.WriteEmptyObject()
	} else {
		s.WriteObjectStart()
		for i, id := range ids {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(strconv.Itoa(id))
			s.WriteVal(doc.Records[id])
		}
		s.WriteObjectEnd()
	}
	s.WriteObjectEnd()
	s.WriteRaw("\n")

	if s.Error != nil {
		return fmt.Errorf("encoding JSON: %w", s.Error)
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Decode reads a document, validates it against the export schema and
// checks that its format version is compatible with FormatVersion.
// Schema violations are returned as *SchemaError.
func Decode(r io.Reader, enc Encoding) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	result, err := Validate(data, enc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &SchemaError{Issues: result.Issues}
	}

	var doc Document
	switch enc {
	case JSON:
		if err := jsonAPI.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	if err := CheckCompatible(doc.FormatVersion); err != nil {
		return nil, err
	}
	if doc.Records == nil {
		doc.Records = make(map[int]Record)
	}
	return &doc, nil
}

// Marshal is a convenience wrapper around Encode.
func Marshal(doc *Document, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
