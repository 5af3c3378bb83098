package document

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// FormatVersion is the layout version written into every exported document.
const FormatVersion = "1.0.0"

// Encoding selects the textual representation of a document.
type Encoding string

const (
	YAML Encoding = "yaml"
	JSON Encoding = "json"
)

// ParseEncoding maps a config value to an Encoding. Unknown values fall back to YAML.
func ParseEncoding(s string) Encoding {
	if strings.EqualFold(strings.TrimSpace(s), string(JSON)) {
		return JSON
	}
	return YAML
}

// EncodingForPath picks JSON for ".json" files and YAML for everything else.
func EncodingForPath(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

var entityPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateEntity checks that name is an entity noun the export schema accepts.
func ValidateEntity(name string) error {
	if !entityPattern.MatchString(name) {
		return fmt.Errorf("invalid entity name %q: must match pattern [a-z][a-z0-9-]*", name)
	}
	return nil
}

// Record is the serialized form of a single registry record.
type Record struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// Document is the full export of a registry.
type Document struct {
	FormatVersion string         `yaml:"format_version" json:"format_version"`
	Entity        string         `yaml:"entity" json:"entity"`
	ExportedAt    time.Time      `yaml:"exported_at,omitempty" json:"exported_at,omitempty"`
	Records       map[int]Record `yaml:"records" json:"records"`
}

// UnmarshalYAML accepts record keys written either as integers or as
// quoted strings ("1":).
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		FormatVersion string            `yaml:"format_version"`
		Entity        string            `yaml:"entity"`
		ExportedAt    time.Time         `yaml:"exported_at"`
		Records       map[string]Record `yaml:"records"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	records := make(map[int]Record, len(raw.Records))
	for key, rec := range raw.Records {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("record key %q is not an integer id", key)
		}
		if _, dup := records[id]; dup {
			return fmt.Errorf("duplicate record key %d", id)
		}
		records[id] = rec
	}

	d.FormatVersion = raw.FormatVersion
	d.Entity = raw.Entity
	d.ExportedAt = raw.ExportedAt
	d.Records = records
	return nil
}

// New returns an empty document stamped with the current format version.
func New(entity string, exportedAt time.Time) *Document {
	return &Document{
		FormatVersion: FormatVersion,
		Entity:        entity,
		ExportedAt:    exportedAt.UTC(),
		Records:       make(map[int]Record),
	}
}

// IDs returns the record keys in ascending order.
func (d *Document) IDs() []int {
	ids := make([]int, 0, len(d.Records))
	for id := range d.Records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
