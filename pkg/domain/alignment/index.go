package alignment

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Index holds the lookup structures the validator derives from the parsed
// features. The feature-declared backward link (UCReference) and the
// use-case-declared forward link (BDDFileReferenced) stay separate edge sets:
// each direction is validated on its own, and their disagreement is itself a
// reportable condition.
type Index struct {
	// ReferencedUCs is the set of use case ids claimed by at least one feature.
	ReferencedUCs map[string]struct{}
	// FeatureByUC maps a use case id to the feature claiming it. When several
	// features claim the same id, the one with the lexically greatest name
	// wins, mirroring the deterministic last-write rule of the scans.
	FeatureByUC map[string]*BDDFeature
	// FeatureFiles is the set of existing feature file base names, lower-cased,
	// used to resolve forward file references.
	FeatureFiles map[string]struct{}
}

// BuildIndex derives the cross-reference index from a feature repository.
func BuildIndex(features map[string]*BDDFeature) *Index {
	idx := &Index{
		ReferencedUCs: make(map[string]struct{}),
		FeatureByUC:   make(map[string]*BDDFeature),
		FeatureFiles:  make(map[string]struct{}),
	}
	for _, name := range slices.Sorted(maps.Keys(features)) {
		f := features[name]
		if f.UCReference != "" {
			idx.ReferencedUCs[f.UCReference] = struct{}{}
			idx.FeatureByUC[f.UCReference] = f
		}
		idx.FeatureFiles[strings.ToLower(filepath.Base(f.Path))] = struct{}{}
	}
	return idx
}
