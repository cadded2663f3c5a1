package expr

import "strings"

// IsOperand reports whether src is a single operand: a literal, an
// identifier, or a bracketed group, followed only by member accesses, index
// expressions and calls. An operand binds tighter than every binary and
// ternary operator, so it never needs parentheses. Anything unsure is
// reported as not an operand.
func IsOperand(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" {
		return false
	}

	i := 0
	if (src[0] == '-' || src[0] == '+') && len(src) > 1 && isDigit(src[1]) {
		i = 1
	}

	s := &scanner{src: src, token: DefaultToken}
	start := true
	expectName := false

	for i < len(src) {
		c := src[i]

		switch {
		case isIdentByte(c) && (start || expectName):
			i = identEnd(src, i)
		case (c == '"' || c == '\'') && start:
			end, err := s.quoted(i, c)
			if err != nil {
				return false
			}

			i = end
		case c == '`' && start:
			end, err := s.templateLiteral(i)
			if err != nil {
				return false
			}

			i = end
		case (c == '(' || c == '[' || (c == '{' && start)) && !expectName:
			end := groupEnd(src, i)
			if end < 0 {
				return false
			}

			i = end
		case c == '.' && !start && !expectName:
			expectName = true
			i++

			continue
		case strings.HasPrefix(src[i:], "?.") && !start && !expectName:
			i += 2
			expectName = i < len(src) && isIdentByte(src[i])

			continue
		default:
			return false
		}

		start = false
		expectName = false
	}

	return !expectName
}

// groupEnd returns the index after the bracket closing the one at i, or -1.
func groupEnd(src string, i int) int {
	s := &scanner{src: src, token: DefaultToken}
	depth := 0

	for j := i; j < len(src); {
		switch c := src[j]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return j + 1
			}
		case '"', '\'':
			end, err := s.quoted(j, c)
			if err != nil {
				return -1
			}

			j = end

			continue
		case '`':
			end, err := s.templateLiteral(j)
			if err != nil {
				return -1
			}

			j = end

			continue
		}

		j++
	}

	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
