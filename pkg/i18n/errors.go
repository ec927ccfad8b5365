package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage      = errors.New("i18n: empty language code")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile  = errors.New("i18n: failed to parse translation file")
	ErrUnsupportedFormat  = errors.New("i18n: unsupported translation file format")
	ErrInvalidCatalogRoot = errors.New("i18n: catalog root must map languages to objects")
)
