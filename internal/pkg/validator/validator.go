package validator

// Validator validates structs using struct tags.
type Validator interface {
	// Validate returns an error describing the first set of failed rules.
	Validate(data any) error
}
