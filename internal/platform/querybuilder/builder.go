package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join appends a raw join clause, e.g. "LEFT JOIN teams t ON t.id = c.team_id".
func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	b.joins = append(b.joins, strings.TrimSpace(clause))
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := newWriter(len(b.where))
	w.sql("SELECT ")
	w.joined(b.columns, ", ")
	w.sql(" FROM ", b.table)
	for _, join := range b.joins {
		w.sql(" ", join)
	}
	w.where(b.where)
	if len(b.groupBy) > 0 {
		w.sql(" GROUP BY ")
		w.joined(b.groupBy, ", ")
	}
	if len(b.orderBy) > 0 {
		w.sql(" ORDER BY ")
		w.joined(b.orderBy, ", ")
	}
	if b.limit > 0 {
		w.sql(" LIMIT ", strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		w.sql(" OFFSET ", strconv.Itoa(b.offset))
	}

	query, args := w.finish()
	return query, args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := newWriter(len(b.rows) * len(b.columns))
	w.sql("INSERT INTO ", b.table, " (")
	w.joined(b.columns, ", ")
	w.sql(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			w.release()
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.sql(", ")
		}
		w.sql("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.sql(", ")
			}
			w.bind(value)
		}
		w.sql(")")
	}

	if b.suffix != "" {
		w.sql(" ", b.suffix)
	}

	query, args := w.finish()
	return query, args, nil
}

type setClause struct {
	column string
	value  any
	raw    *exprCondition
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{
		column: column,
		raw:    &exprCondition{expr: expr, args: args},
	})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := newWriter(len(b.sets) + len(b.where))
	w.sql("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.sql(", ")
		}
		w.sql(s.column, " = ")
		if s.raw != nil {
			s.raw.write(w)
			continue
		}
		w.bind(s.value)
	}

	w.where(b.where)
	if b.suffix != "" {
		w.sql(" ", b.suffix)
	}

	query, args := w.finish()
	return query, args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	suffix string
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) Suffix(sql string) *DeleteBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

// ToSQL refuses to build an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete requires at least one condition")
	}

	w := newWriter(len(b.where))
	w.sql("DELETE FROM ", b.table)
	w.where(b.where)
	if b.suffix != "" {
		w.sql(" ", b.suffix)
	}

	query, args := w.finish()
	return query, args, nil
}
