package voynich

import (
	"reflect"
	"testing"
)

func TestDecomposeQokeedy(t *testing.T) {
	a := DefaultAnalyzer()
	m := a.Decompose("qokeedy")
	want := Morphology{Prefix: "qo", Middle: "ke", Suffix: "edy"}
	if m != want {
		t.Errorf("Decompose(qokeedy) = %+v, want %+v", m, want)
	}
}

func TestDecomposeLongestSuffixWins(t *testing.T) {
	// "edy" must be preferred over the shorter "dy" and "y".
	a := DefaultAnalyzer()
	m := a.Decompose("qokeedy")
	if m.Suffix != "edy" {
		t.Errorf("suffix = %q, want %q", m.Suffix, "edy")
	}
}

func TestDecomposeNoAffixMatch(t *testing.T) {
	a := DefaultAnalyzer()
	m := a.Decompose("oeex")
	want := Morphology{Middle: "oeex"}
	if m != want {
		t.Errorf("Decompose(oeex) = %+v, want %+v", m, want)
	}
}

func TestDecomposeWholeTokenIsAffix(t *testing.T) {
	// Stripping never leaves an empty remainder: a token that IS an
	// affix keeps it as its middle.
	a := DefaultAnalyzer()
	for _, text := range []string{"ol", "qo", "y", "aiin"} {
		m := a.Decompose(text)
		if m.Middle != text {
			t.Errorf("Decompose(%q).Middle = %q, want %q", text, m.Middle, text)
		}
	}
}

func TestDecomposeArticulatorAndPrefix(t *testing.T) {
	a := DefaultAnalyzer()
	m := a.Decompose("dchol")
	want := Morphology{Articulator: "d", Prefix: "cho", Middle: "l"}
	if m != want {
		t.Errorf("Decompose(dchol) = %+v, want %+v", m, want)
	}
}

func TestDecomposeEmptyString(t *testing.T) {
	a := DefaultAnalyzer()
	if m := a.Decompose(""); m != (Morphology{}) {
		t.Errorf("Decompose(\"\") = %+v, want zero value", m)
	}
}

func TestDecomposeIdempotent(t *testing.T) {
	a := DefaultAnalyzer()
	for _, text := range []string{"qokeedy", "daiin", "chedy", "shol", "ol", ""} {
		first := a.Decompose(text)
		second := a.Decompose(text)
		if first != second {
			t.Errorf("Decompose(%q) not deterministic: %+v vs %+v", text, first, second)
		}
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	a := DefaultAnalyzer()
	words := []string{
		"qokeedy", "daiin", "chedy", "shedy", "qokaiin", "chol",
		"otedy", "dchol", "saiin", "okeody", "cheor", "ol", "dar",
	}
	for _, w := range words {
		m := a.Decompose(w)
		if got := m.Join(); got != w {
			t.Errorf("Join(Decompose(%q)) = %q (parts %v)", w, got, m.Parts())
		}
	}
}

func TestAffixTableOrdering(t *testing.T) {
	tab := NewAffixTable([]string{"y", "edy", "dy", "ey"})
	want := []string{"edy", "dy", "ey", "y"}
	if got := tab.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v (descending length, stable)", got, want)
	}
}

func TestAffixTableDropsDuplicates(t *testing.T) {
	tab := NewAffixTable([]string{"qo", "", "qo", "ch"})
	if got := tab.Entries(); !reflect.DeepEqual(got, []string{"qo", "ch"}) {
		t.Errorf("Entries() = %v, want [qo ch]", got)
	}
}

func TestDefaultArticulatorsSubsetOfPrefixes(t *testing.T) {
	prefixes := NewAffixTable(DefaultPrefixes())
	for _, art := range DefaultArticulators() {
		if !prefixes.Contains(art) {
			t.Errorf("articulator %q missing from the prefix table", art)
		}
	}
}
