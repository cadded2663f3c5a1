package expr

import "strings"

// operandKeywords are followed by an operand, not an operator.
var operandKeywords = map[string]bool{
	"await": true, "case": true, "delete": true, "do": true, "else": true,
	"in": true, "instanceof": true, "new": true, "of": true, "return": true,
	"typeof": true, "void": true, "yield": true,
}

type scanner struct {
	src        string
	token      string
	identToken bool

	segments []Segment
	literal  strings.Builder
}

func (s *scanner) flush() {
	if s.literal.Len() > 0 {
		s.segments = append(s.segments, Segment{Text: s.literal.String()})
		s.literal.Reset()
	}
}

func (s *scanner) emit(text string) {
	s.literal.WriteString(text)
}

func (s *scanner) placeholder() {
	s.flush()
	s.segments = append(s.segments, Segment{Text: s.token, Placeholder: true})
}

// scanExpr scans from i until the end of input or, when inTemplate is set,
// the '}' closing a template substitution. It returns the index after the
// last consumed byte.
func (s *scanner) scanExpr(i int, inTemplate bool) (int, error) {
	expectOperand := true
	depth := 0

	for i < len(s.src) {
		c := s.src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.emit(s.src[i : i+1])
			i++

		case expectOperand && s.tokenAt(i):
			s.placeholder()
			i += len(s.token)
			expectOperand = false

		case c == '\'' || c == '"':
			end, err := s.quoted(i, c)
			if err != nil {
				return 0, err
			}

			s.emit(s.src[i:end])
			i = end
			expectOperand = false

		case c == '`':
			end, err := s.templateLiteral(i)
			if err != nil {
				return 0, err
			}

			i = end
			expectOperand = false

		case isIdentByte(c):
			end := identEnd(s.src, i)
			word := s.src[i:end]
			s.emit(word)
			i = end
			expectOperand = operandKeywords[word]

		case c == '{' || c == '(' || c == '[':
			if c == '{' {
				depth++
			}

			s.emit(s.src[i : i+1])
			i++
			expectOperand = true

		case c == '}' && inTemplate && depth == 0:
			return i, nil

		case c == '}' || c == ')' || c == ']':
			if c == '}' {
				depth--
			}

			s.emit(s.src[i : i+1])
			i++
			expectOperand = false

		case strings.HasPrefix(s.src[i:], "//") || strings.HasPrefix(s.src[i:], "/*"):
			end, err := s.comment(i)
			if err != nil {
				return 0, err
			}

			s.emit(s.src[i:end])
			i = end

		case c == '/' && expectOperand:
			end, err := s.regexLiteral(i)
			if err != nil {
				return 0, err
			}

			s.emit(s.src[i:end])
			i = end
			expectOperand = false

		case c == '?' && !expectOperand:
			op := questionOperator(s.src[i:])
			s.emit(op)
			i += len(op)
			expectOperand = true

		default:
			s.emit(s.src[i : i+1])
			i++
			expectOperand = true
		}
	}

	if inTemplate {
		return 0, ErrUnterminated
	}

	return i, nil
}

// tokenAt reports whether the token starts at i. Identifier-like tokens must
// span the whole identifier.
func (s *scanner) tokenAt(i int) bool {
	if !strings.HasPrefix(s.src[i:], s.token) {
		return false
	}

	if s.identToken {
		return identEnd(s.src, i) == i+len(s.token)
	}

	return true
}

// quoted returns the index after the string literal starting at i.
func (s *scanner) quoted(i int, quote byte) (int, error) {
	for j := i + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case '\\':
			j++
		case quote:
			return j + 1, nil
		case '\n':
			return 0, ErrUnterminated
		}
	}

	return 0, ErrUnterminated
}

// regexLiteral returns the index after the regular expression literal,
// flags included, starting at i. Slashes inside a [...] class do not close it.
func (s *scanner) regexLiteral(i int) (int, error) {
	inClass := false

	for j := i + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return identEnd(s.src, j+1), nil
			}
		case '\n':
			return 0, ErrUnterminated
		}
	}

	return 0, ErrUnterminated
}

// comment returns the index after the line or block comment starting at i.
func (s *scanner) comment(i int) (int, error) {
	if strings.HasPrefix(s.src[i:], "//") {
		if n := strings.IndexByte(s.src[i:], '\n'); n >= 0 {
			return i + n, nil
		}

		return len(s.src), nil
	}

	n := strings.Index(s.src[i+2:], "*/")
	if n < 0 {
		return 0, ErrUnterminated
	}

	return i + 2 + n + 2, nil
}

// templateLiteral emits the template literal starting at i, scanning each
// ${...} substitution as an expression.
func (s *scanner) templateLiteral(i int) (int, error) {
	s.emit("`")

	j := i + 1
	for j < len(s.src) {
		switch {
		case s.src[j] == '\\' && j+1 < len(s.src):
			s.emit(s.src[j : j+2])
			j += 2

		case s.src[j] == '`':
			s.emit("`")
			return j + 1, nil

		case strings.HasPrefix(s.src[j:], "${"):
			s.emit("${")

			end, err := s.scanExpr(j+2, true)
			if err != nil {
				return 0, err
			}

			s.emit("}")
			j = end + 1

		default:
			s.emit(s.src[j : j+1])
			j++
		}
	}

	return 0, ErrUnterminated
}

// questionOperator returns the '?'-led operator at the start of rest.
func questionOperator(rest string) string {
	for _, op := range []string{"??=", "??", "?."} {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}

	return "?"
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func identEnd(src string, i int) int {
	for i < len(src) && isIdentByte(src[i]) {
		i++
	}

	return i
}

func isIdentLike(token string) bool {
	for i := 0; i < len(token); i++ {
		if !isIdentByte(token[i]) {
			return false
		}
	}

	return true
}
