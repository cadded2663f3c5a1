package gen

import (
	"strconv"

	"convertor-generator/internal/mapping"
)

// PropertyKey returns name as written in a type declaration or object
// literal: bare when it is an identifier, quoted otherwise.
func PropertyKey(name string) string {
	if mapping.IsIdentifier(name) {
		return name
	}

	return strconv.Quote(name)
}

// AccessExpr returns the expression reading prop off param, optional-chained
// when optional is set.
func AccessExpr(param, prop string, optional bool) string {
	if mapping.IsIdentifier(prop) {
		if optional {
			return param + "?." + prop
		}

		return param + "." + prop
	}

	if optional {
		return param + "?.[" + strconv.Quote(prop) + "]"
	}

	return param + "[" + strconv.Quote(prop) + "]"
}
