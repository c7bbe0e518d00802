package httpapi

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestMatchRequest_ScoreDecoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    int
		present bool
	}{
		{name: "integer", raw: `3`, want: 3, present: true},
		{name: "zero", raw: `0`, want: 0, present: true},
		{name: "negative stays for validation", raw: `-1`, want: -1, present: true},
		{name: "quoted", raw: `"2"`},
		{name: "fraction", raw: `2.5`},
		{name: "null", raw: `null`},
		{name: "object", raw: `{"goals":2}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req matchRequest
			if err := jsoniter.Unmarshal([]byte(`{"homeScore":`+tc.raw+`}`), &req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			got := req.toInput().HomeScore
			if !tc.present {
				if got != nil {
					t.Fatalf("expected missing score, got %d", *got)
				}
				return
			}
			if got == nil || *got != tc.want {
				t.Fatalf("expected %d, got %v", tc.want, got)
			}
		})
	}
}
