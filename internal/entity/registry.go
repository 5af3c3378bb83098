package entity

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rolodex-labs/rolodex/internal/branding"
	"github.com/rolodex-labs/rolodex/internal/document"
)

// Registry owns a set of records keyed by id.
type Registry struct {
	entity  string
	now     func() time.Time
	records map[int]Record
}

// Option configures a Registry.
type Option func(*Registry)

// WithEntityName sets the entity noun written into exported documents.
// Exports fail with ErrInvalidInput unless the noun matches [a-z][a-z0-9-]*.
func WithEntityName(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.entity = name
		}
	}
}

// WithClock overrides the time source used to stamp exports.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entity:  branding.DefaultEntity(),
		now:     time.Now,
		records: make(map[int]Record),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EntityName returns the entity noun of the registry.
func (r *Registry) EntityName() string {
	return r.entity
}

// Len returns the number of stored records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Create validates name and email, stores a new record with the next
// sequential id, and returns a copy of it. Name is checked before email.
func (r *Registry) Create(name, email string) (Record, error) {
	if err := checkFields(name, email); err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	rec := Record{
		ID:    len(r.records) + 1,
		Name:  name,
		Email: email,
	}
	r.records[rec.ID] = rec
	return rec, nil
}

// checkFields reports the first problem with name, then with email.
// Text must be valid UTF-8 so that every encoding round-trips it.
func checkFields(name, email string) error {
	switch {
	case name == "":
		return errors.New("name cannot be empty")
	case !utf8.ValidString(name):
		return errors.New("name is not valid UTF-8")
	case email == "":
		return errors.New("email cannot be empty")
	case !utf8.ValidString(email):
		return errors.New("email is not valid UTF-8")
	}
	return nil
}

// Get returns the record with the given id. The bool is false when no
// such record exists.
func (r *Registry) Get(id int) (Record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// FindByName returns every record whose name contains term, ordered by id.
// Matching is case-sensitive; an empty term matches all records.
func (r *Registry) FindByName(term string) []Record {
	var matches []Record
	for _, rec := range r.All() {
		if strings.Contains(rec.Name, term) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// All returns every record ordered by id.
func (r *Registry) All() []Record {
	all := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Document returns the export document for the current record set.
func (r *Registry) Document() *document.Document {
	doc := document.New(r.entity, r.now())
	for id, rec := range r.records {
		doc.Records[id] = rec.toDocument()
	}
	return doc
}

// encode renders the export document in memory. An entity noun the
// schema would reject wraps ErrInvalidInput; encoder failures wrap
// ErrSerialization.
func (r *Registry) encode(enc document.Encoding) ([]byte, error) {
	if err := document.ValidateEntity(r.entity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var buf bytes.Buffer
	if err := document.Encode(&buf, r.Document(), enc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// ExportAll encodes the full id → record mapping and writes it to w.
// Nothing is written unless encoding succeeds.
func (r *Registry) ExportAll(w io.Writer, enc document.Encoding) error {
	data, err := r.encode(enc)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing export: %w", ErrIO, err)
	}
	return nil
}

// ExportFile writes the export document to a temporary file next to path
// and renames it into place, so a failed export leaves any existing file
// untouched. The temporary file is closed on every return path.
func (r *Registry) ExportFile(path string, enc document.Encoding) (err error) {
	data, err := r.encode(enc)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", ErrIO, path, err)
	}
	return nil
}

// Load fills an empty registry from a decoded export document. The
// document's ids must be exactly 1..N so that subsequent creates keep
// assigning unique ids.
func (r *Registry) Load(doc *document.Document) error {
	if len(r.records) > 0 {
		return fmt.Errorf("%w: registry already holds %d records", ErrInvalidInput, len(r.records))
	}
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidInput)
	}
	if doc.Entity != "" {
		if err := document.ValidateEntity(doc.Entity); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	loaded := make(map[int]Record, len(doc.Records))
	for i, id := range doc.IDs() {
		d := doc.Records[id]
		if id != i+1 {
			return fmt.Errorf("%w: record ids must run 1..%d without gaps, found %d", ErrInvalidInput, len(doc.Records), id)
		}
		if d.ID != id {
			return fmt.Errorf("%w: record under key %d has id %d", ErrInvalidInput, id, d.ID)
		}
		if err := checkFields(d.Name, d.Email); err != nil {
			return fmt.Errorf("%w: record %d: %s", ErrInvalidInput, id, err)
		}
		loaded[id] = recordFromDocument(d)
	}

	if doc.Entity != "" {
		r.entity = doc.Entity
	}
	r.records = loaded
	return nil
}

// LoadFile decodes the export document at path into an empty registry.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	doc, err := document.Decode(f, document.EncodingForPath(path))
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return r.Load(doc)
}
