// Package sanitizer holds small string transforms applied to form input before
// it reaches the rule engine, plus Apply and Compose for chaining them.
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace)
//	clean("  Jane   Doe ") // "Jane Doe"
package sanitizer
