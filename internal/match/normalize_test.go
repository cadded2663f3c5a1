package match

import (
	"reflect"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"from_property", "fromproperty"},
		{"From Property", "fromproperty"},
		{"fromProperty", "fromproperty"},
		{"FromProperty", "fromproperty"},
		{"FROM_PROPERTY", "fromproperty"},
		{"  to-data-type ", "todatatype"},
		{"source.type.name", "sourcetypename"},
		{"XMLParser", "xmlparser"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"transformExpression", []string{"transform", "expression"}},
		{"Default Value", []string{"default", "value"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"dest_type_name", []string{"dest", "type", "name"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
