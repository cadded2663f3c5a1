package gen

import (
	"errors"
	"fmt"
	"path/filepath"

	"convertor-generator/internal/common"
	"convertor-generator/internal/expr"
	"convertor-generator/internal/mapping"
)

// ErrPlaceholderWithoutSource is returned for a transform that uses the
// placeholder on a row with no from_property.
var ErrPlaceholderWithoutSource = errors.New("placeholder used without from_property")

// unknownType is declared for fields with an empty data type.
const unknownType = "unknown"

// templateData holds all data needed for the converter template.
type templateData struct {
	Header       bool
	Source       string
	SourceType   typeDecl
	DestType     typeDecl
	FunctionName string
	ParamName    string
	Assignments  []assignmentData
}

// typeDecl is an object type alias.
type typeDecl struct {
	Name   string
	Fields []fieldDecl
}

// fieldDecl is one property of a typeDecl.
type fieldDecl struct {
	Key      string
	Optional bool
	Type     string
}

// assignmentData is one property of the returned object literal.
type assignmentData struct {
	Key  string
	Expr string
}

// buildTemplateData applies the row rule to every row of t.
func (g *Generator) buildTemplateData(t *mapping.Table) (*templateData, error) {
	cfg := t.Config

	sourceFields := common.NewOrderedSet[fieldDecl]()
	destFields := common.NewOrderedSet[fieldDecl]()
	assignments := common.NewOrderedSet[assignmentData]()

	for i := range t.Rows {
		row := &t.Rows[i]

		if row.HasSource() {
			sourceFields.Set(row.FromProperty, fieldDecl{
				Key:      PropertyKey(row.FromProperty),
				Optional: row.FromOptional,
				Type:     typeOrUnknown(row.FromDataType),
			})
		}

		value, err := ValueExpr(row, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", row.Location(), err)
		}

		key := PropertyKey(row.ToProperty)

		destFields.Set(row.ToProperty, fieldDecl{
			Key:      key,
			Optional: row.ToOptional,
			Type:     typeOrUnknown(row.ToDataType),
		})
		assignments.Set(row.ToProperty, assignmentData{Key: key, Expr: value})
	}

	source := ""
	if t.Source != "" {
		source = filepath.Base(t.Source)
	}

	return &templateData{
		Header:       g.config.GenerateHeader,
		Source:       source,
		SourceType:   typeDecl{Name: cfg.SourceTypeName, Fields: sourceFields.Values()},
		DestType:     typeDecl{Name: cfg.DestTypeName, Fields: destFields.Values()},
		FunctionName: cfg.FunctionName,
		ParamName:    cfg.ParamName,
		Assignments:  assignments.Values(),
	}, nil
}

// ValueExpr returns the expression assigned to the row's destination field.
func ValueExpr(row *mapping.Row, cfg mapping.Config) (string, error) {
	access := ""
	if row.HasSource() {
		access = AccessExpr(cfg.ParamName, row.FromProperty, row.FromOptional)
	}

	primary := access

	if row.HasTransform() {
		tpl, err := expr.Parse(row.Transform, cfg.Placeholder)
		if err != nil {
			return "", err
		}

		if tpl.Placeholders() > 0 && !row.HasSource() {
			return "", ErrPlaceholderWithoutSource
		}

		primary = tpl.Render(access)
	}

	if row.HasDefault() {
		if row.HasTransform() {
			primary = "(" + primary + ")"
		}

		fallback := row.Default
		if !expr.IsOperand(fallback) {
			fallback = "(" + fallback + ")"
		}

		primary += " ?? " + fallback
	}

	return primary, nil
}

func typeOrUnknown(t string) string {
	if t == "" {
		return unknownType
	}

	return t
}
