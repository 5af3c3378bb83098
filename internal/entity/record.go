package entity

import "github.com/rolodex-labs/rolodex/internal/document"

// Record is a uniquely identified entry with a name and an email address.
// Records are immutable once created; the registry hands out copies.
type Record struct {
	ID    int
	Name  string
	Email string
}

func (r Record) toDocument() document.Record {
	return document.Record{ID: r.ID, Name: r.Name, Email: r.Email}
}

func recordFromDocument(d document.Record) Record {
	return Record{ID: d.ID, Name: d.Name, Email: d.Email}
}
