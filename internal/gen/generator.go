package gen

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"convertor-generator/internal/mapping"
)

// ErrDuplicateOutput is returned when two inputs map to the same output file.
var ErrDuplicateOutput = errors.New("inputs generate the same output file")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// FileSuffix is appended to the input base name.
	FileSuffix string
	// Extension is the extension of generated files.
	Extension string
	// GenerateHeader emits the "Code generated" comment.
	GenerateHeader bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FileSuffix:     "-converter",
		Extension:      ".ts",
		GenerateHeader: true,
	}
}

// Generator generates TypeScript converter modules from mapping tables.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "users-converter.ts").
	Filename string
	// Source is the input the file was generated from.
	Source string
	// Content is the generated source code.
	Content []byte
}

// Generate compiles every table, in order. It fails on the first table that
// cannot be compiled, and when two tables would write the same file.
func (g *Generator) Generate(tables []*mapping.Table) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(tables))
	bySource := make(map[string]string, len(tables))

	for _, t := range tables {
		file, err := g.GenerateTable(t)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", t.Source, err)
		}

		if prev, ok := bySource[file.Filename]; ok {
			return nil, fmt.Errorf("%w: %s and %s both generate %s",
				ErrDuplicateOutput, prev, t.Source, file.Filename)
		}

		bySource[file.Filename] = t.Source
		files = append(files, *file)
	}

	return files, nil
}

// GenerateTable compiles a single table.
func (g *Generator) GenerateTable(t *mapping.Table) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := converterTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Filename: g.Filename(t.Source),
		Source:   t.Source,
		Content:  buf.Bytes(),
	}, nil
}

// Filename returns the output file name for an input path:
// "<input-basename>-converter.ts".
func (g *Generator) Filename(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + g.config.FileSuffix + g.config.Extension
}

// Template for the converter file

var converterTemplate = template.Must(template.New("converter").Parse(`
{{- define "fields"}}{{if .}}{
{{- range .}}
  {{.Key}}{{if .Optional}}?{{end}}: {{.Type}};
{{- end}}
}{{else}}{}{{end}}{{end -}}

{{- if .Header}}// Code generated by convertor-generator{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

{{end -}}
export type {{.SourceType.Name}} = {{template "fields" .SourceType.Fields}};

export type {{.DestType.Name}} = {{template "fields" .DestType.Fields}};

export const {{.FunctionName}} = ({{.ParamName}}: {{.SourceType.Name}}): {{.DestType.Name}} => {
  return {
{{- range .Assignments}}
    {{.Key}}: {{.Expr}},
{{- end}}
  };
};
`))
