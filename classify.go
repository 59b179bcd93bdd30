package voynich

import "sort"

// MiddleClass is the disjoint semantic category of a middle unit,
// derived from its occurrence across the two Currier tracks.
type MiddleClass int

const (
	// ClassUnclassified marks middles too rare to classify, or seen
	// only in track B. Callers must handle this state explicitly; it is
	// never folded into RI or PP.
	ClassUnclassified MiddleClass = iota
	// ClassRI marks middles observed exclusively in track A.
	ClassRI
	// ClassPP marks middles observed in both tracks.
	ClassPP
)

// Class labels are part of the serialized artifact contract and must
// not change.
const (
	labelRI           = "RI"
	labelPP           = "PP"
	labelUnclassified = "UNCLASSIFIED"
)

func (c MiddleClass) String() string {
	switch c {
	case ClassRI:
		return labelRI
	case ClassPP:
		return labelPP
	default:
		return labelUnclassified
	}
}

// DefaultMinOccurrences is the default minimum total occurrence count a
// middle needs before it is admitted into RI or PP. Single-occurrence
// middles are mostly transcription noise.
const DefaultMinOccurrences = 2

// ClassifierOptions controls classifier construction. The zero value
// selects the defaults.
type ClassifierOptions struct {
	// MinOccurrences is the admission threshold; 0 means
	// DefaultMinOccurrences.
	MinOccurrences int
}

func (o ClassifierOptions) minOccurrences() int {
	if o.MinOccurrences <= 0 {
		return DefaultMinOccurrences
	}
	return o.MinOccurrences
}

// MiddleClassifier partitions the observed middle vocabulary into RI
// (track-A exclusive) and PP (shared) sets. It is built once per corpus
// snapshot by BuildClassifier and is immutable afterwards: lookups are
// O(1) and two builds from the same snapshot assign identical classes.
type MiddleClassifier struct {
	classes   map[string]MiddleClass
	trackA    map[string]int
	trackB    map[string]int
	threshold int
}

// BuildClassifier runs the analyzer over every token of the corpus and
// computes the track vocabularies. Middles occurring fewer than the
// threshold total times, or only in track B, stay unclassified. An
// empty or single-track corpus builds an empty partition; that is
// degenerate but valid.
func BuildClassifier(c *Corpus, a *Analyzer, opts ClassifierOptions) *MiddleClassifier {
	mc := &MiddleClassifier{
		classes:   make(map[string]MiddleClass),
		trackA:    make(map[string]int),
		trackB:    make(map[string]int),
		threshold: opts.minOccurrences(),
	}

	for _, tok := range c.Tokens() {
		mid := a.Middle(tok.Text)
		if mid == "" {
			continue
		}
		switch tok.Track {
		case TrackA:
			mc.trackA[mid]++
		case TrackB:
			mc.trackB[mid]++
		}
	}

	// Admission is driven from the A side: RI = A-only, PP = A∩B.
	// B-only middles never enter the partition.
	for mid, na := range mc.trackA {
		nb := mc.trackB[mid]
		if na+nb < mc.threshold {
			continue
		}
		if nb > 0 {
			mc.classes[mid] = ClassPP
		} else {
			mc.classes[mid] = ClassRI
		}
	}

	return mc
}

// Classify returns the class of middle. Unknown and below-threshold
// middles are ClassUnclassified.
func (mc *MiddleClassifier) Classify(middle string) MiddleClass {
	return mc.classes[middle]
}

// Threshold returns the admission threshold the classifier was built with.
func (mc *MiddleClassifier) Threshold() int { return mc.threshold }

// RI returns the sorted track-A-exclusive middle set.
func (mc *MiddleClassifier) RI() []string { return mc.classList(ClassRI) }

// PP returns the sorted shared middle set.
func (mc *MiddleClassifier) PP() []string { return mc.classList(ClassPP) }

func (mc *MiddleClassifier) classList(class MiddleClass) []string {
	var out []string
	for mid, c := range mc.classes {
		if c == class {
			out = append(out, mid)
		}
	}
	sort.Strings(out)
	return out
}

// BelowThreshold returns the sorted middles observed in track A or B
// but kept out of the partition by the occurrence threshold. They are
// reported, never silently merged into a class.
func (mc *MiddleClassifier) BelowThreshold() []string {
	var out []string
	for mid, na := range mc.trackA {
		if na+mc.trackB[mid] < mc.threshold {
			out = append(out, mid)
		}
	}
	for mid, nb := range mc.trackB {
		if _, inA := mc.trackA[mid]; !inA && nb < mc.threshold {
			out = append(out, mid)
		}
	}
	sort.Strings(out)
	return out
}

// Occurrences returns the per-track occurrence counts for middle.
func (mc *MiddleClassifier) Occurrences(middle string) (trackA, trackB int) {
	return mc.trackA[middle], mc.trackB[middle]
}
