package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Madrid  ", 10, "Madrid"},
		{"Reykjavik", 0, "Reykjavik"},
		{"Reykjavik", 3, "Rey"},
		{"Reykjavik", 6, "Rey..."},
		{"Lisbon", 6, "Lisbon"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("MAD", 5); got != "MAD  " {
		t.Fatalf("padRight = %q, want %q", got, "MAD  ")
	}
	if got := padRight("Prague", 3); got != "Prague" {
		t.Fatalf("padRight shorter width = %q, want unchanged", got)
	}
	if got := padRight("x", 0); got != "x" {
		t.Fatalf("padRight zero width = %q, want unchanged", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-3, 0, 100); got != 0 {
		t.Fatalf("clampInt low = %d", got)
	}
	if got := clampInt(130, 0, 100); got != 100 {
		t.Fatalf("clampInt high = %d", got)
	}
	if got := clampInt(80, 0, 100); got != 80 {
		t.Fatalf("clampInt mid = %d", got)
	}
}
