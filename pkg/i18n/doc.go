// Package i18n translates validation messages.
//
// Catalogs map a language code to a nested map of keys; dotted keys such as
// "validation.min_length" walk the nesting. Templates use %{name}
// placeholders filled from the rule's parameters:
//
//	de:
//	  validation:
//	    required: "Dieses Feld ist erforderlich"
//	    min_length: "Mindestens %{min} Zeichen"
//
// Catalogs come from a TranslationAdapter: MapAdapter for in-memory data or
// FileAdapter for a YAML (yaml.v3) or JSON (sonic) file. Requested languages
// are matched against the loaded ones with golang.org/x/text/language, so
// "de-AT" resolves to "de" and unsupported languages fall back to the
// default language.
//
// A Translator is read-only after NewTranslator and safe for concurrent use.
package i18n
