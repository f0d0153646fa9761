package entities

import "errors"

// Error kinds surfaced by the fetch pipeline. Callers wrap them with the
// underlying cause so both can be matched with errors.Is.
var (
	ErrUsage      = errors.New("usage error")
	ErrTransport  = errors.New("transport error")
	ErrFilesystem = errors.New("filesystem error")
	ErrExtraction = errors.New("extraction error")
	ErrRelocation = errors.New("relocation error")
)
