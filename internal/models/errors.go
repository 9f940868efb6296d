package models

import "fmt"

// ParseError reports an LLM completion that could not be read as the
// structured JSON the prompt asked for.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return "LLM response could not be parsed as JSON"
	}
	return fmt.Sprintf("LLM response could not be parsed as JSON: %s", e.Detail)
}

// ResolutionError reports a place query the search provider returned no
// usable candidate for.
type ResolutionError struct {
	Query string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve place: %s", e.Query)
}
