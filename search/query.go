package search

import (
	"fmt"
	"strings"
)

var ErrEmptyQuery = fmt.Errorf("query contains no usable terms")

// ParseKeywords splits a comma-separated keyword query as the bot receives
// it. Blank entries disappear; the caller decides what an empty result
// means for its dialog step.
func ParseKeywords(input string) []string {
	var terms []string
	for _, part := range strings.Split(input, ",") {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
