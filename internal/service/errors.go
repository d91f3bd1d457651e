package service

import "errors"

// Generation-path failures are surfaced to the caller explicitly because no
// graceful substitute text exists. Store failures never reach this level;
// adapters degrade them to empty result sets.
var (
	// ErrAIUnavailable indicates the text-generation service could not be reached
	ErrAIUnavailable = errors.New("AI service unavailable")

	// ErrAITimeout indicates the text-generation service exceeded its deadline
	ErrAITimeout = errors.New("AI request timed out")
)
