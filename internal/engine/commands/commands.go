// Released under an MIT license. See LICENSE.

// Package commands provides the native procedures of the global environment.
package commands

import (
	"math"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
)

// Constants returns the named values of the global environment. INF and
// NAN need no binding as they read as numbers.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"E":   num.Float(math.E),
		"PI":  num.Float(math.Pi),
		"TAU": num.Float(2 * math.Pi),
	}
}

// Functions returns the procedures that only need their evaluated arguments.
func Functions() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"*":        mul,
		"+":        add,
		"-":        sub,
		"/":        div,
		"<":        lt,
		"<=":       le,
		"=":        eq,
		">":        gt,
		">=":       ge,
		"ABS":      abs,
		"ACOS":     math1("ACOS", math.Acos),
		"ASIN":     math1("ASIN", math.Asin),
		"ATAN":     atan,
		"BEGIN":    begin,
		"CEIL":     integral("CEIL", math.Ceil),
		"CONS":     cons,
		"COS":      math1("COS", math.Cos),
		"DEBUG":    debug,
		"EQ?":      isEq,
		"EQUAL?":   isEqual,
		"EXP":      math1("EXP", math.Exp),
		"EXPT":     expt,
		"FABS":     math1("FABS", math.Abs),
		"FLOOR":    integral("FLOOR", math.Floor),
		"LENGTH":   length,
		"LIST":     makeList,
		"LISTP?":   isList,
		"LOG":      log,
		"MATCH":    match,
		"MAX":      maximum,
		"MIN":      minimum,
		"NOT":      not,
		"NULL?":    isNull,
		"NUMBERP?": isNumber,
		"POW":      pow,
		"REVERSE":  reverse,
		"ROUND":    round,
		"SIN":      math1("SIN", math.Sin),
		"SQRT":     math1("SQRT", math.Sqrt),
		"TAN":      math1("TAN", math.Tan),
		"TRUNC":    integral("TRUNC", math.Trunc),
	}
}

// Spread returns the elements of args[0] if args holds a single list.
// Otherwise, it returns args.
func Spread(args []cell.I) []cell.I {
	if len(args) == 1 {
		if l, ok := args[0].(*list.T); ok {
			return l.Items()
		}
	}

	return args
}
