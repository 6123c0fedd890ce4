package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	iso, ok := ParseDate("2024-03-05")
	if !ok {
		t.Fatal("ISO date rejected")
	}
	alt, ok := ParseDate("05/03/2024")
	if !ok {
		t.Fatal("DD/MM/YYYY date rejected")
	}
	if !iso.Equal(alt) {
		t.Fatalf("formats disagree: %s vs %s", iso, alt)
	}
	if iso.Year() != 2024 || iso.Month() != 3 || iso.Day() != 5 {
		t.Fatalf("unexpected date %s", iso)
	}

	for _, bad := range []string{"", "not-a-date", "2024-13-01", "31/02/2024", "2024/03/05"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateOfDropsClock(t *testing.T) {
	d := DateOf(time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local))
	if !d.Equal(NewDate(2024, 3, 5)) {
		t.Fatalf("got %s", d)
	}
}

func TestDateJSON(t *testing.T) {
	type wrap struct {
		Fecha Date `json:"fecha"`
	}
	b, err := json.Marshal(wrap{Fecha: NewDate(2024, 3, 5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"fecha":"2024-03-05"}` {
		t.Fatalf("got %s", b)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"fecha":"garbage"}`), &w); err != nil {
		t.Fatalf("malformed date should be tolerated: %v", err)
	}
	if !w.Fecha.IsZero() {
		t.Fatalf("expected zero date, got %s", w.Fecha)
	}
}
