package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{" 3 "}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"two"}, wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseSteps(tc.args)
		if (err != nil) != tc.wantErr {
			t.Fatalf("parseSteps(%v): unexpected error %v", tc.args, err)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("parseSteps(%v): expected %d, got %d", tc.args, tc.want, got)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	if v, err := parseVersion("1"); err != nil || v != 1 {
		t.Fatalf("unexpected version parse: %d %v", v, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected invalid target to fail")
	}
}

func TestRun_RequiresArgs(t *testing.T) {
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	t.Setenv("DB_URL", "")
	if err := run([]string{"up"}, logging.NewNop()); err == nil {
		t.Fatalf("expected DB_URL error")
	}
}
