// Package validation binds request bodies and validates them.
//
// Struct rules are expressed as go-playground/validator tags; failures are
// turned into field-level errors keyed by the JSON field name.
package validation
