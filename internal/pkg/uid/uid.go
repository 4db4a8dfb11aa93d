// Package uid provides ID generators: snowflake for numeric entity IDs,
// UUID for string correlation/token IDs, and an object-id generator for
// storage keys.
package uid

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
