package voynich

import "testing"

func TestIsGallows(t *testing.T) {
	for _, r := range "ktpf" {
		if !IsGallows(r) {
			t.Errorf("IsGallows(%q) = false", r)
		}
	}
	for _, r := range "aochedy" {
		if IsGallows(r) {
			t.Errorf("IsGallows(%q) = true", r)
		}
	}
}

func TestIsBenchedGallows(t *testing.T) {
	cases := map[string]bool{
		"ckhedy": true,
		"cthol":  true,
		"cphedy": true,
		"cfhol":  true,
		"chedy":  false,
		"ckedy":  false,
		"ck":     false,
		"":       false,
	}
	for s, want := range cases {
		if got := IsBenchedGallows(s); got != want {
			t.Errorf("IsBenchedGallows(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestContainsIllegible(t *testing.T) {
	if !ContainsIllegible("da?in") || !ContainsIllegible("ch*l") {
		t.Error("illegible markers not detected")
	}
	if ContainsIllegible("daiin") {
		t.Error("clean word flagged as illegible")
	}
}

func TestIsEVAWord(t *testing.T) {
	cases := map[string]bool{
		"qokeedy": true,
		"daiin":   true,
		"da?in":   false,
		"DAIIN":   false,
		"":        false,
	}
	for s, want := range cases {
		if got := IsEVAWord(s); got != want {
			t.Errorf("IsEVAWord(%q) = %v, want %v", s, got, want)
		}
	}
}
