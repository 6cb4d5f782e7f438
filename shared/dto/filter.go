package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Operators understood by Filter.GetWhereClause. Anything else yields an
// empty clause.
const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a single column condition rendered as a named-parameter SQL
// fragment. ArgName overrides the parameter name when the same value is
// matched against several columns inside one group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_not_null is_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName != "" {
		return f.ArgName
	}

	return f.Field
}

// GetWhereClause renders the condition and its named arguments. Comparison
// values are bound, never interpolated; the like operator lowercases both
// sides and wraps the value in wildcards.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	column, arg := f.column(), f.argName()
	args := map[string]any{}

	switch f.Operator {
	case FilterOperatorEq:
		args[arg] = f.Value

		return fmt.Sprintf("%s = :%s", column, arg), args
	case FilterOperatorNotEq:
		args[arg] = f.Value

		return fmt.Sprintf("%s != :%s", column, arg), args
	case FilterOperatorLessEq:
		args[arg] = f.Value

		return fmt.Sprintf("%s <= :%s", column, arg), args
	case FilterOperatorGreaterEq:
		args[arg] = f.Value

		return fmt.Sprintf("%s >= :%s", column, arg), args
	case FilterOperatorLike:
		args[arg] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, arg), args
	case FilterOperatorIn:
		return f.inClause(column, arg, args)
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

func (f *Filter) inClause(column, arg string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if kind := val.Type().Kind(); kind != reflect.Slice && kind != reflect.Array {
		return fmt.Sprintf("%s IN (%s) ", column, f.Value), args
	}

	named := make([]string, val.Len())
	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", arg, idx)
		args[key] = val.Index(idx).Interface()
		named[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with a single boolean
// operator. The rendered clause is parenthesized so groups compose.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, member := range f.Filters {
		switch filter := member.(type) {
		case Filter:
			clause, arg := filter.GetWhereClause()
			clauses = append(clauses, clause)
			maps.Copy(args, arg)
		case FilterGroup:
			clause, arg := filter.GetWhereClause()
			clauses = append(clauses, clause)
			maps.Copy(args, arg)
		}
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " "+f.Operator+" ") + ")", args
}
