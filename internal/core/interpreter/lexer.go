package interpreter

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/yndnr/bpls-go/internal/core/domain"
)

// Tokenize splits line on whitespace. Single- or double-quoted spans form one
// token with the quotes removed.
func Tokenize(line string) ([]string, error) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, domain.ErrMalformed.Detailf("Unterminated quote in command.").WithCause(err)
	}
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyCommand
	}
	return tokens, nil
}

// name strips stray double quotes left around a name token.
func name(tok string) string {
	return strings.Trim(tok, `"`)
}
