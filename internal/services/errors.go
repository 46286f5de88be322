// Package services holds the application logic between the HTTP layer and the
// search engine, dataset store and audit repository. This file centralizes the
// service-level error values; handlers translate them into HTTP responses.
package services

import "errors"

var (
	// ErrQueryTooLong is returned when a query exceeds the configured rune limit.
	ErrQueryTooLong = errors.New("query too long")

	// ErrUnknownKind is returned when a type filter or directory names a
	// collection that does not exist. It is wrapped with the offending name.
	ErrUnknownKind = errors.New("unknown record type")

	// ErrInvalidDataset is returned when a replacement dataset document is not
	// a JSON object.
	ErrInvalidDataset = errors.New("dataset document must be a JSON object")
)
