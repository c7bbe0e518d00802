package querybuilder

import (
	"strings"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("division_id", "d1"), IsNull("deleted_at")).
		OrderBy("name ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE division_id = $1 AND deleted_at IS NULL ORDER BY name ASC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "d1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndIn(t *testing.T) {
	t.Parallel()

	query, args, err := Select("g.id", "p.name").
		From("goals g").
		Join("LEFT JOIN players p ON p.id = g.player_id").
		Where(InStrings("g.match_id", []string{"m1", "m2"}), Expr("g.minute >= ?", 10)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT g.id, p.name FROM goals g LEFT JOIN players p ON p.id = g.player_id WHERE g.match_id IN ($1, $2) AND g.minute >= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "m1" || args[1] != "m2" || args[2] != 10 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("players").Where(InStrings("team_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("divisions").
		Columns("id", "name").
		Values("d1", "U12 North").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO divisions (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "d1" || args[1] != "U12 North" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("goals").Columns("id", "match_id").Values("g1").ToSQL()
	if err == nil || !strings.Contains(err.Error(), "expected 2") {
		t.Fatalf("expected width error, got %v", err)
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("matches").
		Set("notes", "rain delay").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET notes = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "rain delay" || args[1] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("goals").Where(Eq("match_id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM goals WHERE match_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("goals").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

type goalRow struct {
	ID        string `db:"id"`
	MatchID   string `db:"match_id"`
	IsOwnGoal bool   `db:"is_own_goal"`
	Ignored   string `db:"-"`
	CreatedAt string `db:"created_at" qb:"readonly"`
}

func TestInsertModels(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModels("goals", []any{
		goalRow{ID: "g1", MatchID: "m1"},
		&goalRow{ID: "g2", MatchID: "m1", IsOwnGoal: true},
	}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO goals (id, match_id, is_own_goal) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[3] != "g2" || args[5] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}
