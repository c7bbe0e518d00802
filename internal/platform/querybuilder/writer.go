package querybuilder

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// writer accumulates one statement and its positional arguments. Buffers
// come from a shared pool since repositories build a query per call.
type writer struct {
	buf  *bytebufferpool.ByteBuffer
	args []any
	next int
}

func newWriter(argHint int) *writer {
	return &writer{
		buf:  bytebufferpool.Get(),
		args: make([]any, 0, argHint),
		next: 1,
	}
}

func (w *writer) finish() (string, []any) {
	query := w.buf.String()
	bytebufferpool.Put(w.buf)
	w.buf = nil
	return query, w.args
}

func (w *writer) release() {
	if w.buf != nil {
		bytebufferpool.Put(w.buf)
		w.buf = nil
	}
}

func (w *writer) sql(parts ...string) {
	for _, part := range parts {
		_, _ = w.buf.WriteString(part)
	}
}

func (w *writer) joined(items []string, sep string) {
	for i, item := range items {
		if i > 0 {
			w.sql(sep)
		}
		w.sql(item)
	}
}

func (w *writer) bind(value any) {
	w.sql("$", strconv.Itoa(w.next))
	w.args = append(w.args, value)
	w.next++
}

// expr copies expr into the statement replacing each '?' with the next
// positional placeholder. Extra '?' without a matching argument stay literal.
func (w *writer) expr(expr string, exprArgs []any) {
	if len(exprArgs) == 0 {
		w.sql(expr)
		return
	}

	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && used < len(exprArgs) {
			w.bind(exprArgs[used])
			used++
			continue
		}
		_ = w.buf.WriteByte(expr[i])
	}
}

func (w *writer) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.sql(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.sql(" AND ")
		}
		c.write(w)
	}
}
