package console

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

// Tokenize splits one submitted line into command words following POSIX
// shell quoting and escaping rules. Unterminated quotes and malformed
// escapes fail with ErrParse. A blank line yields zero tokens.
func Tokenize(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return words, nil
}
