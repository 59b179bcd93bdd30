package voynich

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Artifact is the serialized form of a built MiddleClassifier: the
// middle → class mapping plus the two underlying track vocabularies,
// persisted so repeated runs need not re-scan the corpus. Field names
// and the "RI"/"PP" class labels are a compatibility contract with the
// downstream analysis scripts and must not change.
type Artifact struct {
	Threshold      int               `json:"threshold"`
	Classes        map[string]string `json:"classes"`
	TrackA         map[string]int    `json:"track_a"`
	TrackB         map[string]int    `json:"track_b"`
	BelowThreshold []string          `json:"below_threshold"`
}

// Artifact captures the classifier's state for serialization.
func (mc *MiddleClassifier) Artifact() *Artifact {
	art := &Artifact{
		Threshold:      mc.threshold,
		Classes:        make(map[string]string, len(mc.classes)),
		TrackA:         make(map[string]int, len(mc.trackA)),
		TrackB:         make(map[string]int, len(mc.trackB)),
		BelowThreshold: mc.BelowThreshold(),
	}
	for mid, c := range mc.classes {
		art.Classes[mid] = c.String()
	}
	for mid, n := range mc.trackA {
		art.TrackA[mid] = n
	}
	for mid, n := range mc.trackB {
		art.TrackB[mid] = n
	}
	return art
}

// Classifier reconstructs a MiddleClassifier from a persisted artifact.
func (a *Artifact) Classifier() (*MiddleClassifier, error) {
	mc := &MiddleClassifier{
		classes:   make(map[string]MiddleClass, len(a.Classes)),
		trackA:    make(map[string]int, len(a.TrackA)),
		trackB:    make(map[string]int, len(a.TrackB)),
		threshold: a.Threshold,
	}
	for mid, label := range a.Classes {
		switch label {
		case labelRI:
			mc.classes[mid] = ClassRI
		case labelPP:
			mc.classes[mid] = ClassPP
		default:
			return nil, errors.Newf("artifact: unknown class label %q for middle %q", label, mid)
		}
	}
	for mid, n := range a.TrackA {
		mc.trackA[mid] = n
	}
	for mid, n := range a.TrackB {
		mc.trackB[mid] = n
	}
	return mc, nil
}

// WriteArtifact serializes the classifier as indented JSON.
func WriteArtifact(w io.Writer, mc *MiddleClassifier) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mc.Artifact()); err != nil {
		return errors.Wrap(err, "encode classifier artifact")
	}
	return nil
}

// ReadArtifact deserializes a classifier written by WriteArtifact.
func ReadArtifact(r io.Reader) (*MiddleClassifier, error) {
	var art Artifact
	if err := json.NewDecoder(r).Decode(&art); err != nil {
		return nil, errors.Wrap(err, "decode classifier artifact")
	}
	return art.Classifier()
}

// WriteArtifactFile writes the classifier artifact to path.
func WriteArtifactFile(path string, mc *MiddleClassifier) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create artifact %s", path)
	}
	defer f.Close()
	if err := WriteArtifact(f, mc); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "close artifact %s", path)
}

// ReadArtifactFile reads a classifier artifact from path.
func ReadArtifactFile(path string) (*MiddleClassifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open artifact %s", path)
	}
	defer f.Close()
	return ReadArtifact(f)
}
