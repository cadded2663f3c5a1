package mapping

import (
	"errors"
	"fmt"

	"convertor-generator/internal/diagnostic"
	"convertor-generator/internal/expr"
)

// Diagnostic codes produced by Validate.
const (
	CodeEmptyToProperty     = "empty_to_property"
	CodeEmptySource         = "empty_source"
	CodeInvalidTransform    = "invalid_transform"
	CodePlaceholderUnused   = "placeholder_unused"
	CodeNoSourceForToken    = "placeholder_without_source"
	CodeDuplicateToProperty = "duplicate_to_property"
	CodeConflictingFromType = "conflicting_from_type"
	CodeInvalidConfig       = "invalid_config"
)

// StrictCodes are the warnings strict mode treats as errors.
var StrictCodes = []string{CodeDuplicateToProperty, CodeConflictingFromType}

// Validate checks a table for problems the generator cannot recover from and
// for ambiguities worth a warning.
func Validate(t *Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "mapping table is nil", "")
		return res
	}

	validateConfig(res, &t.Config)

	seenTo := map[string]int{}
	seenFrom := map[string]Row{}

	for i := range t.Rows {
		row := &t.Rows[i]
		loc := row.Location()

		if row.ToProperty == "" {
			res.AddError(CodeEmptyToProperty, "to_property is empty", loc)
		} else if first, ok := seenTo[row.ToProperty]; ok {
			res.AddWarning(CodeDuplicateToProperty,
				fmt.Sprintf("to_property %q already mapped at %s; the last row wins", row.ToProperty, rowRef(first)),
				loc)
		} else {
			seenTo[row.ToProperty] = row.Line
		}

		if !row.HasSource() && !row.HasTransform() {
			res.AddError(CodeEmptySource, "row has neither from_property nor transform_expression", loc)
		}

		if row.HasSource() {
			if prev, ok := seenFrom[row.FromProperty]; ok &&
				(prev.FromDataType != row.FromDataType || prev.FromOptional != row.FromOptional) {
				res.AddWarning(CodeConflictingFromType,
					fmt.Sprintf("from_property %q is declared differently at %s; the last row wins",
						row.FromProperty, rowRef(prev.Line)),
					loc)
			}

			seenFrom[row.FromProperty] = *row
		}

		validateTransform(res, row, t.Config.Placeholder)
	}

	return res
}

func validateTransform(res *diagnostic.Diagnostics, row *Row, token string) {
	if !row.HasTransform() || token == "" {
		return
	}

	tpl, err := expr.Parse(row.Transform, token)
	if err != nil {
		msg := fmt.Sprintf("transform_expression: %v", err)
		if errors.Is(err, expr.ErrUnterminated) {
			msg = fmt.Sprintf("transform_expression %q has an unterminated string literal", row.Transform)
		}

		res.AddError(CodeInvalidTransform, msg, row.Location())

		return
	}

	if !row.HasSource() && tpl.Placeholders() > 0 {
		res.AddError(CodeNoSourceForToken,
			fmt.Sprintf("transform_expression uses %q but the row has no from_property", token),
			row.Location())
	}

	if row.HasSource() && tpl.Placeholders() == 0 {
		res.AddWarning(CodePlaceholderUnused,
			fmt.Sprintf("transform_expression never uses %q, so from_property %q is not read",
				token, row.FromProperty),
			row.Location())
	}
}

func validateConfig(res *diagnostic.Diagnostics, c *Config) {
	names := []struct{ key, value string }{
		{KeySourceTypeName, c.SourceTypeName},
		{KeyDestTypeName, c.DestTypeName},
		{KeyFunctionName, c.FunctionName},
		{KeyParamName, c.ParamName},
	}

	for _, n := range names {
		if !IsBindingName(n.value) {
			res.AddError(CodeInvalidConfig, fmt.Sprintf("%s %q is not a valid identifier", n.key, n.value), ConfigSheet)
		}
	}

	if c.SourceTypeName == c.DestTypeName {
		res.AddError(CodeInvalidConfig,
			fmt.Sprintf("source and destination types are both named %q", c.SourceTypeName), ConfigSheet)
	}

	if c.Placeholder == "" {
		res.AddError(CodeInvalidConfig, "placeholder is empty", ConfigSheet)
	}
}

func rowRef(line int) string {
	if line == 0 {
		return "an earlier row"
	}

	return fmt.Sprintf("row %d", line)
}
