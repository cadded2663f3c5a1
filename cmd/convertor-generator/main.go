// Package main provides the CLI entrypoint for convertor-generator.
//
// convertor-generator reads field mapping tables from .xlsx workbooks and
// generates one TypeScript converter module per workbook:
//   - a source type and a destination type declaration
//   - a convert function built from the rows of the "target" sheet
//
// The output directory is recreated on every run.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"convertor-generator/internal/config"
	"convertor-generator/internal/diagnostic"
	"convertor-generator/internal/gen"
	"convertor-generator/internal/mapping"
	"convertor-generator/internal/sheet"
)

const (
	programName    = "convertor-generator"
	inputExt       = ".xlsx"
	lockFilePrefix = "~$"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const helpText = `
convertor-generator: TypeScript convertor generator from excel

Usage: convertor-generator [option]

Options:
 -f, --file <file>          excel file (repeatable)
 --fileDir <fileDir>        excel file directory
 -o, --outdir <outdir>      output directory (default "./out", recreated on every run)
 -c, --config <file>        settings file (default "convertor-generator.yaml" if present)
 --strict                   treat duplicate or conflicting rows as errors
 -q, --quiet                only print warnings and errors
 --print-config             print the resolved settings as YAML and exit
 -h, --help                 show help message
 -v, --version              show version

Examples:

 $ convertor-generator -f example.xlsx
 $ convertor-generator --file example.xlsx -o ./out
 $ convertor-generator -f example.xlsx -f example2.xlsx --outdir ./dist
 $ convertor-generator --fileDir ./excel --outdir ./dist
`

var errNoInput = errors.New("you need to choose file")

type options struct {
	files       []string
	fileDir     string
	outDir      string
	configPath  string
	strict      bool
	quiet       bool
	help        bool
	version     bool
	printConfig bool
}

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts options

	fs.StringArrayVarP(&opts.files, "file", "f", nil, "excel file")
	fs.StringVar(&opts.fileDir, "fileDir", "", "excel file directory")
	fs.StringVarP(&opts.outDir, "outdir", "o", "", "output directory")
	fs.StringVar(&opts.outDir, "outDir", "", "output directory")
	fs.StringVarP(&opts.configPath, "config", "c", "", "settings file")
	fs.BoolVar(&opts.strict, "strict", false, "treat duplicate or conflicting rows as errors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "only print warnings and errors")
	fs.BoolVarP(&opts.help, "help", "h", false, "show help message")
	fs.BoolVarP(&opts.version, "version", "v", false, "show version")
	fs.BoolVar(&opts.printConfig, "print-config", false, "print the resolved settings as YAML and exit")

	rep := newReporter(stdout, stderr)

	if err := fs.MarkHidden("outDir"); err != nil {
		rep.Errorf("%v", err)
		return exitFailure
	}

	if err := fs.Parse(args); err != nil {
		rep.Errorf("%v", err)
		rep.Usage()

		return exitFailure
	}

	switch {
	case opts.help:
		rep.Help()
		return exitOK
	case opts.version:
		rep.Printf("%s %s\n", programName, version)
		return exitOK
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		rep.Errorf("%v", err)
		return exitFailure
	}

	if fs.Changed("outdir") || fs.Changed("outDir") {
		settings.OutDir = opts.outDir
	}

	if fs.Changed("strict") {
		settings.Strict = opts.strict
	}

	if fs.Changed("quiet") {
		settings.Quiet = opts.quiet
	}

	rep.quiet = settings.Quiet

	if opts.printConfig {
		data, err := settings.Marshal()
		if err != nil {
			rep.Errorf("%v", err)
			return exitFailure
		}

		_, _ = stdout.Write(data)

		return exitOK
	}

	if err := run(&opts, settings, rep); err != nil {
		rep.Errorf("%v", err)

		if errors.Is(err, errNoInput) {
			rep.Usage()
		}

		return exitFailure
	}

	return exitOK
}

// run validates the inputs, compiles every workbook and only then replaces
// the output directory.
func run(opts *options, settings config.Settings, rep *reporter) error {
	if len(opts.files) == 0 && opts.fileDir == "" {
		return errNoInput
	}

	inputs, err := collectInputs(opts)
	if err != nil {
		return err
	}

	rep.Printf("check %s...\n", strings.Join(inputs, ", "))

	if err := checkInputs(inputs, settings.OutDir); err != nil {
		return err
	}

	tables := make([]*mapping.Table, 0, len(inputs))

	for _, path := range inputs {
		rep.Printf("load %s...\n", path)

		table, err := loadTable(path, settings, rep)
		if err != nil {
			return err
		}

		tables = append(tables, table)
	}

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(tables)
	if err != nil {
		return err
	}

	if err := gen.ReplaceDir(settings.OutDir, files); err != nil {
		return err
	}

	for _, f := range files {
		rep.Printf("generated %s\n", filepath.Join(settings.OutDir, f.Filename))
	}

	return nil
}

// loadTable reads and validates one workbook. Warnings and infos are
// reported; any error diagnostic fails the run.
func loadTable(path string, settings config.Settings, rep *reporter) (*mapping.Table, error) {
	table, diags, err := sheet.ReadFile(path, settings.Mapping())
	if err != nil {
		return nil, err
	}

	if diags.IsValid() {
		diags.Merge(*mapping.Validate(table))
	}

	if settings.Strict {
		diags.Promote(mapping.StrictCodes...)
	}

	rep.Diagnostics(path, diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// collectInputs lists the workbooks of --fileDir, sorted, followed by every
// --file in command-line order.
func collectInputs(opts *options) ([]string, error) {
	var inputs []string

	if opts.fileDir != "" {
		entries, err := os.ReadDir(opts.fileDir)
		if err != nil {
			return nil, fmt.Errorf("reading file directory: %w", err)
		}

		var names []string

		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || strings.HasPrefix(name, lockFilePrefix) || !hasInputExt(name) {
				continue
			}

			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			inputs = append(inputs, filepath.Join(opts.fileDir, name))
		}
	}

	inputs = append(inputs, opts.files...)

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no %s files in %s", inputExt, opts.fileDir)
	}

	return inputs, nil
}

// checkInputs fails on the first input that is missing, is not a workbook,
// or would be deleted together with the output directory.
func checkInputs(inputs []string, outDir string) error {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("file does not exist: %s", path)
		}
	}

	for _, path := range inputs {
		if !hasInputExt(path) {
			return fmt.Errorf("file is not an excel workbook: %s", path)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		if gen.Contains(absOut, abs) {
			return fmt.Errorf("%s is inside the output directory %s, which is recreated on every run", path, outDir)
		}
	}

	return nil
}

func hasInputExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), inputExt)
}

// reporter writes progress to stdout and problems to stderr.
type reporter struct {
	out   io.Writer
	err   io.Writer
	quiet bool
}

func newReporter(out, err io.Writer) *reporter {
	return &reporter{out: out, err: err}
}

// Printf writes a progress line unless quiet.
func (r *reporter) Printf(format string, args ...any) {
	if r.quiet {
		return
	}

	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Errorf writes an error line.
func (r *reporter) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.err, "error: "+format+"\n", args...)
}

// Help writes the help text to stdout.
func (r *reporter) Help() {
	_, _ = fmt.Fprint(r.out, helpText)
}

// Usage writes the help text to stderr.
func (r *reporter) Usage() {
	_, _ = fmt.Fprint(r.err, helpText)
}

// Diagnostics writes the infos and warnings of one input. Errors are
// returned by loadTable instead.
func (r *reporter) Diagnostics(path string, d *diagnostic.Diagnostics) {
	for _, i := range d.Infos {
		r.Printf("info: %s: %s\n", path, i)
	}

	for _, w := range d.Warnings {
		_, _ = fmt.Fprintf(r.err, "warning: %s: %s\n", path, w)
	}
}
