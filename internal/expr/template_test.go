package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func substitute(expression, token, value string) (string, error) {
	tpl, err := Parse(expression, token)
	if err != nil {
		return "", err
	}

	return tpl.Render(value), nil
}

func TestRender_DefaultToken(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"bare", "?", "from.v"},
		{"call argument", "Number(?)", "Number(from.v)"},
		{"every occurrence", "? + ?", "from.v + from.v"},
		{"method call on placeholder", "?.trim()", "from.v.trim()"},
		{"nullish after placeholder", `? ?? ""`, `from.v ?? ""`},
		{"ternary after comparison", `? > 0 ? "yes" : "no"`, `from.v > 0 ? "yes" : "no"`},
		{"ternary with placeholder branch", "flag ? ? : 0", "flag ? from.v : 0"},
		{"optional chaining left alone", "x?.y ?? ?", "x?.y ?? from.v"},
		{"nullish assignment left alone", "a ??= ?", "a ??= from.v"},
		{"double quoted text untouched", `? === "?" ? 1 : 0`, `from.v === "?" ? 1 : 0`},
		{"single quoted text untouched", `'?' + ?`, `'?' + from.v`},
		{"escaped quote", `"a\"?" + ?`, `"a\"?" + from.v`},
		{"template literal substitution", "`#${?}?`", "`#${from.v}?`"},
		{"nested braces in template", "`${ {a: ?}.a }`", "`${ {a: from.v}.a }`"},
		{"array literal", "[?, ?]", "[from.v, from.v]"},
		{"after keyword", `typeof ? === "string"`, `typeof from.v === "string"`},
		{"arrow body", "(?).map((x) => x * 2)", "(from.v).map((x) => x * 2)"},
		{"no placeholder", "new Date()", "new Date()"},
		{"regex non-capturing group", `?.replace(/(?:-)/g, "")`, `from.v.replace(/(?:-)/g, "")`},
		{"regex lazy quantifier", `/^\d+?$/.test(?)`, `/^\d+?$/.test(from.v)`},
		{"quote inside regex", `?.replace(/'/g, "")`, `from.v.replace(/'/g, "")`},
		{"slash inside regex class", `?.split(/[/?]/)`, `from.v.split(/[/?]/)`},
		{"escaped slash in regex", `?.replace(/\/?/g, "-")`, `from.v.replace(/\/?/g, "-")`},
		{"regex after keyword", `typeof ? === "string" && /x?/i.test(?)`, `typeof from.v === "string" && /x?/i.test(from.v)`},
		{"division is not a regex", "(? / 2) / ?", "(from.v / 2) / from.v"},
		{"block comment untouched", "? /* ? */ + 1", "from.v /* ? */ + 1"},
		{"line comment untouched", "? // ?", "from.v // ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := substitute(tt.expr, DefaultToken, "from.v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_IdentifierToken(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"$v.toUpperCase()", "from.name.toUpperCase()"},
		{"$value + $v", "$value + from.name"},
		{`"$v" + $v`, `"$v" + from.name`},
		{"x.$v", "x.from.name"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := substitute(tt.expr, "$v", "from.name")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_BracedToken(t *testing.T) {
	got, err := substitute("String({{value}}).padStart(4, '0')", "{{value}}", "from.code")
	require.NoError(t, err)
	assert.Equal(t, "String(from.code).padStart(4, '0')", got)
}

func TestParse_Segments(t *testing.T) {
	tpl, err := Parse("Math.round(? * 100)", "?")
	require.NoError(t, err)

	assert.Equal(t, 1, tpl.Placeholders())
	assert.Equal(t, []Segment{
		{Text: "Math.round("},
		{Text: "?", Placeholder: true},
		{Text: " * 100)"},
	}, tpl.Segments)
	assert.Equal(t, "Math.round(? * 100)", tpl.Render("?"))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("?", "")
	require.ErrorIs(t, err, ErrEmptyToken)

	for _, src := range []string{`"abc`, `'abc`, "`abc", "`${?`", "/abc", "?.split(/[/)", "? /* x"} {
		_, err := Parse(src, DefaultToken)
		require.ErrorIs(t, err, ErrUnterminated, src)
	}
}
