package expr

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultToken is the placeholder used when none is configured.
const DefaultToken = "?"

var (
	// ErrEmptyToken is returned when the placeholder token is empty.
	ErrEmptyToken = errors.New("placeholder token is empty")
	// ErrUnterminated is returned for an unclosed string, template or regular
	// expression literal, or an unclosed block comment.
	ErrUnterminated = errors.New("unterminated literal")
)

// Segment is a run of literal text, or a placeholder when Placeholder is set.
type Segment struct {
	Text        string
	Placeholder bool
}

// Template is a parsed transform expression.
type Template struct {
	Source   string
	Token    string
	Segments []Segment
}

// Parse scans expression and splits it at every placeholder occurrence of token.
func Parse(expression, token string) (*Template, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	s := &scanner{src: expression, token: token, identToken: isIdentLike(token)}
	if _, err := s.scanExpr(0, false); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expression, err)
	}

	s.flush()

	return &Template{
		Source:   expression,
		Token:    token,
		Segments: s.segments,
	}, nil
}

// Placeholders returns the number of placeholder occurrences.
func (t *Template) Placeholders() int {
	n := 0

	for _, seg := range t.Segments {
		if seg.Placeholder {
			n++
		}
	}

	return n
}

// Render returns the expression with every placeholder replaced by value.
func (t *Template) Render(value string) string {
	var sb strings.Builder

	for _, seg := range t.Segments {
		if seg.Placeholder {
			sb.WriteString(value)
		} else {
			sb.WriteString(seg.Text)
		}
	}

	return sb.String()
}
