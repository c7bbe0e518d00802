package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation teams does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestNullableString(t *testing.T) {
	t.Parallel()

	if got := nullableString("   "); got.Valid {
		t.Fatalf("expected blank string to be NULL, got %+v", got)
	}
	if got := nullableString(" m1 "); !got.Valid || got.String != "m1" {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestNullableIntRoundTrip(t *testing.T) {
	t.Parallel()

	if got := nullIntToPtr(nullableInt(nil)); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}
	seven := 7
	got := nullIntToPtr(nullableInt(&seven))
	if got == nil || *got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}
