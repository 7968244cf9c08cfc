package services

import "errors"

// Failure kinds surfaced by the ingestion pipeline and feed assembler.
// Callers match them with errors.Is to pick a response status.
var (
	ErrExtraction  = errors.New("article extraction failed")
	ErrSynthesis   = errors.New("speech synthesis failed")
	ErrStorage     = errors.New("object storage failed")
	ErrPersistence = errors.New("article persistence failed")
	ErrNotFound    = errors.New("article not found")
)
