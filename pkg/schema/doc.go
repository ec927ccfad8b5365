// Package schema decodes validation schemas from YAML or JSON documents.
//
// A document lists rule entries per field. Each entry names a catalog rule
// and carries the parameters that rule needs:
//
//	fields:
//	  email:
//	    - rule: required
//	      message: Email is required
//	    - rule: email
//	  password:
//	    - rule: required
//	    - rule: minLength
//	      length: 8
//	  confirmPassword:
//	    - rule: matchField
//	      field: password
//	  username:
//	    - rule: custom
//	      predicate: usernameAvailable
//	      message: Username is taken
//
// Custom predicates cannot be serialized, so custom entries reference a
// name that is resolved through a Registry at decode time.
//
// Decoding is strict: unknown keys, unknown rule names, missing or invalid
// parameters and unregistered predicates all fail with ErrInvalidDocument.
package schema
