package core

import "testing"

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"Comida":  "Comida",
		"comida":  "Comida",
		" SALUD ": "Salud",
		"Viajes":  OtherCategory,
		"":        OtherCategory,
		"otros":   OtherCategory,
	}
	for in, want := range cases {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryAt(t *testing.T) {
	if c, ok := CategoryAt(1); !ok || c != "Comida" {
		t.Fatalf("CategoryAt(1) = %q, %v", c, ok)
	}
	if c, ok := CategoryAt(len(Categories())); !ok || c != OtherCategory {
		t.Fatalf("last category = %q, %v", c, ok)
	}
	for _, i := range []int{0, -1, len(Categories()) + 1} {
		if _, ok := CategoryAt(i); ok {
			t.Errorf("CategoryAt(%d) should fail", i)
		}
	}
}

func TestSuggestCategory(t *testing.T) {
	if got, ok := SuggestCategory("comdia"); !ok || got != "Comida" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if got, ok := SuggestCategory("Transprote"); !ok || got != "Transporte" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if _, ok := SuggestCategory("Comida"); ok {
		t.Fatal("exact match should not produce a suggestion")
	}
	if _, ok := SuggestCategory("zzzzzzzzzzzz"); ok {
		t.Fatal("far-away name should not produce a suggestion")
	}
}
