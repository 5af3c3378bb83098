// Package document defines the on-disk form of an exported registry and
// converts it to and from YAML or JSON. Decoding validates the payload
// against the embedded JSON Schema and rejects documents written with an
// incompatible format version.
package document
