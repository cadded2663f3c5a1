package mapping

import (
	"fmt"

	"convertor-generator/internal/diagnostic"
	"convertor-generator/internal/expr"
	"convertor-generator/internal/match"
)

// Sheet names looked up in a workbook.
const (
	TargetSheet = "target"
	ConfigSheet = "config"
)

// Recognized config keys.
const (
	KeySourceTypeName = "source_type_name"
	KeyDestTypeName   = "dest_type_name"
	KeyFunctionName   = "function_name"
	KeyParamName      = "param_name"
	KeyPlaceholder    = "placeholder"
)

// Config names the generated declarations.
type Config struct {
	SourceTypeName string
	DestTypeName   string
	FunctionName   string
	ParamName      string
	Placeholder    string
}

// DefaultConfig returns the names used when a workbook has no config table.
func DefaultConfig() Config {
	return Config{
		SourceTypeName: "From",
		DestTypeName:   "To",
		FunctionName:   "convert",
		ParamName:      "from",
		Placeholder:    expr.DefaultToken,
	}
}

// KeyValue is one row of a config table.
type KeyValue struct {
	Key   string
	Value string
	Line  int
}

// configAliases maps normalized key spellings to canonical keys.
var configAliases = map[string]string{
	"sourcetypename":      KeySourceTypeName,
	"sourcetype":          KeySourceTypeName,
	"source":              KeySourceTypeName,
	"fromtypename":        KeySourceTypeName,
	"fromtype":            KeySourceTypeName,
	"from":                KeySourceTypeName,
	"desttypename":        KeyDestTypeName,
	"destinationtypename": KeyDestTypeName,
	"desttype":            KeyDestTypeName,
	"dest":                KeyDestTypeName,
	"totypename":          KeyDestTypeName,
	"totype":              KeyDestTypeName,
	"to":                  KeyDestTypeName,
	"functionname":        KeyFunctionName,
	"function":            KeyFunctionName,
	"paramname":           KeyParamName,
	"param":               KeyParamName,
	"placeholder":         KeyPlaceholder,
	"placeholdertoken":    KeyPlaceholder,
}

var canonicalKeys = []string{
	KeySourceTypeName, KeyDestTypeName, KeyFunctionName, KeyParamName, KeyPlaceholder,
}

// CanonicalKey resolves a config key written in any casing or alias.
func CanonicalKey(key string) (string, bool) {
	k, ok := configAliases[match.NormalizeIdent(key)]
	return k, ok
}

// Apply overrides c with the given pairs. Empty values keep the current
// setting; unknown keys are reported as warnings.
func (c *Config) Apply(pairs []KeyValue, diags *diagnostic.Diagnostics) {
	for _, kv := range pairs {
		key, ok := CanonicalKey(kv.Key)
		if !ok {
			diags.AddWarning("unknown_config_key",
				fmt.Sprintf("unknown config key %q", kv.Key),
				configLocation(kv.Line),
				match.Suggest(kv.Key, canonicalKeys)...)

			continue
		}

		if kv.Value == "" {
			continue
		}

		c.Set(key, kv.Value)
	}
}

// Set assigns a canonical key. Unknown keys are ignored.
func (c *Config) Set(key, value string) {
	switch key {
	case KeySourceTypeName:
		c.SourceTypeName = value
	case KeyDestTypeName:
		c.DestTypeName = value
	case KeyFunctionName:
		c.FunctionName = value
	case KeyParamName:
		c.ParamName = value
	case KeyPlaceholder:
		c.Placeholder = value
	}
}

func configLocation(line int) string {
	if line == 0 {
		return ConfigSheet
	}

	return fmt.Sprintf("%s row %d", ConfigSheet, line)
}
