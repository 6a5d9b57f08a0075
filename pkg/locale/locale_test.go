package locale

import "testing"

func TestResolveFallsBackToEnglish(t *testing.T) {
	tbl := Builtin()
	if got := Resolve(tbl, "de"); got.Code != "de" {
		t.Fatalf("expected de, got %s", got.Code)
	}
	if got := Resolve(tbl, "xx"); got.Code != "en" {
		t.Fatalf("expected fallback to en, got %s", got.Code)
	}
	if got := Resolve(nil, "de"); got.Code != "en" {
		t.Fatalf("expected en for nil table, got %s", got.Code)
	}
	if got := Resolve(Map{}, "de"); got.Code != "en" {
		t.Fatalf("expected en for empty table, got %s", got.Code)
	}
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"March", 2, true},
		{"mar", 2, true},
		{" DECEMBER ", 11, true},
		{"Smarch", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := English.MonthIndex(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("MonthIndex(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuiltinIsIndependent(t *testing.T) {
	a := Builtin()
	a["xx"] = English
	if _, ok := Builtin().Lookup("xx"); ok {
		t.Fatalf("expected Builtin to return a fresh map")
	}
	if codes := Builtin().Codes(); len(codes) != 4 || codes[0] != "de" {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestBuiltinLabelsComplete(t *testing.T) {
	for code, l := range Builtin() {
		for name, label := range map[string]string{
			"today": l.Today, "clear": l.Clear, "now": l.Now, "done": l.Done,
			"hours": l.Hours, "minutes": l.Minutes, "seconds": l.Seconds,
		} {
			if label == "" {
				t.Fatalf("%s: missing %s label", code, name)
			}
		}
	}
}
