// Package config fills configuration structs from environment variables.
//
// Structs describe their variables with caarlos0/env tags:
//
//	type Policy struct {
//	    ValidateOnChange bool `env:"FORM_VALIDATE_ON_CHANGE" envDefault:"true"`
//	}
//
//	var p Policy
//	err := config.Load(&p, config.WithDotEnv(".env"))
//
// Load has no cache and no package-level state: every call parses again and
// callers pass the resulting value to whatever needs it. Files named with
// WithDotEnv are read with godotenv and never modify the process environment;
// real environment variables take precedence over file entries.
package config
