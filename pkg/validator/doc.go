// Package validator is a declarative rule engine over key/value forms.
//
// A Rule is a plain descriptor: a kind, a failure message, and the one
// parameter the kind needs (a length, a Matcher, or a Predicate). Rules are
// built with the catalog constructors (Required, Email, MinLength, Pattern,
// Custom, StrongPassword, ...) and grouped per field in a Schema. Because rules
// are data, a schema can be decoded from a document, inspected, or composed
// without re-implementing evaluation per field type.
//
// # Values
//
// Field values are a tagged union (Value) with null, string, number, bool,
// string-list and file variants. Each rule kind accepts a fixed set of
// variants; handing a rule a variant it does not accept is a programming error
// reported as ErrValueTypeMismatch, never a silent coercion.
//
// # Evaluation
//
// ValidateField runs every rule in declaration order and keeps every failing
// message, so the first message is always the one of the earliest failing
// rule. Only Required and Custom look at empty values; every other kind passes
// when the value is empty, leaving emptiness to Required.
//
// ValidateForm validates each field independently and aggregates the results.
// Cross-field rules are ordinary custom rules whose predicate reads sibling
// values from the Context snapshot:
//
//	schema := validator.Schema{
//	    "email":           {validator.Required(), validator.Email()},
//	    "password":        {validator.Required(), validator.StrongPassword()},
//	    "confirmPassword": {validator.MatchField("password")},
//	}
//
// # Error Handling
//
// Rule failures are data: message lists in FieldResult and FormResult.
// Errors returned by the Validate* functions always mean a misconfigured
// schema (ErrSchemaMisconfigured) or a value type mismatch. FormResult.Err
// exposes failures as ValidationErrors for callers that prefer an error value.
//
// The package holds no global state and is safe for concurrent use.
package validator
