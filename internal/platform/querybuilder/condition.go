package querybuilder

import "strings"

type Condition interface {
	write(w *writer)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) write(w *writer) {
	w.sql(c.column, " = ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

// In renders column IN (...). An empty list renders a condition that never
// matches so callers don't have to special-case it.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InStrings is In for the common case of string ids.
func InStrings(column string, values []string) Condition {
	items := make([]any, 0, len(values))
	for _, v := range values {
		items = append(items, v)
	}
	return inCondition{column: column, values: items}
}

func (c inCondition) write(w *writer) {
	if len(c.values) == 0 {
		w.sql("1=0")
		return
	}

	w.sql(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.sql(", ")
		}
		w.bind(v)
	}
	w.sql(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) write(w *writer) {
	w.sql(c.column, " IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw SQL fragment using '?' as the argument marker.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) write(w *writer) {
	w.expr(c.expr, c.args)
}

type eqLiteralCondition struct {
	column string
	value  string
}

func EqLiteral(column, value string) Condition {
	return eqLiteralCondition{column: column, value: value}
}

func (c eqLiteralCondition) write(w *writer) {
	w.sql(c.column, " = ", quoteLiteral(c.value))
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
