package voynich

import "strings"

// evaAlphabet lists the transliteration letters admitted in token text.
// The rare capitalized forms used for benched-gallows shorthand in some
// transcriptions are folded to lowercase before this check.
const evaAlphabet = "abcdefghiklmnopqrstuvxyz"

// illegibleMarkers are the characters transcribers use for glyphs they
// could not read. A token containing any of them is dropped at load time.
const illegibleMarkers = "?*"

// gallowsRunes is the full four-member gallows letter class.
const gallowsRunes = "ktpf"

// IsGallows reports whether r is a gallows letter.
func IsGallows(r rune) bool {
	return strings.ContainsRune(gallowsRunes, r)
}

// IsBenchedGallows reports whether s begins with a benched gallows
// digraph (a gallows letter seated on a bench: ckh, cth, cph, cfh).
func IsBenchedGallows(s string) bool {
	if len(s) < 3 || s[0] != 'c' || s[2] != 'h' {
		return false
	}
	return IsGallows(rune(s[1]))
}

// ContainsIllegible reports whether s contains an illegible-glyph marker.
func ContainsIllegible(s string) bool {
	return strings.ContainsAny(s, illegibleMarkers)
}

// IsEVAWord reports whether every rune of s is a valid transliteration
// letter. The empty string is not a word.
func IsEVAWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(evaAlphabet, r) {
			return false
		}
	}
	return true
}

// NormalizeWord lowercases s and strips the word-break and uncertain-space
// markers ("." and ",") that some transcription rows carry inside the
// token field.
func NormalizeWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}
