package query

import "strings"

// tokenize splits on runs of whitespace. There is no quoting, so keys and
// values can never contain a delimiter.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch c {
		case ' ', '\t', '\n', '\r':
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

		default:
			current.WriteByte(c)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
