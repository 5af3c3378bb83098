// Package scaffold generates new Go projects for a named entity from embedded
// templates. It powers the "rolodex scaffold" command, producing either a
// command-line application skeleton or a library skeleton whose types are
// named after the entity.
package scaffold
