package model

// Caveat qualifies a successful resolution.
type Caveat string

// CaveatArchiveEntryUnverified marks an archive match whose entry was never
// looked up inside the archive.
const CaveatArchiveEntryUnverified Caveat = "archive-entry-unverified"

// ResolutionResult is the outcome of resolving one source file. Found is
// false for NOT_FOUND, in which case Candidates still holds every generated
// path for diagnostics.
type ResolutionResult struct {
	Source     SourceFile    `json:"source" yaml:"source"`
	Layout     ProjectLayout `json:"layout" yaml:"layout"`
	Found      bool          `json:"found" yaml:"found"`
	Path       Path          `json:"path,omitempty" yaml:"path,omitempty"`
	Origin     Origin        `json:"origin,omitempty" yaml:"origin,omitempty"`
	Caveats    []Caveat      `json:"caveats,omitempty" yaml:"caveats,omitempty"`
	Candidates []Candidate   `json:"candidates" yaml:"candidates"`
	Existing   []Candidate   `json:"existing" yaml:"existing"`
	Fallbacks  []Candidate   `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
}

// HasCaveat reports whether c was attached to the result.
func (r ResolutionResult) HasCaveat(c Caveat) bool {
	for _, caveat := range r.Caveats {
		if caveat == c {
			return true
		}
	}

	return false
}

// CandidateReport pairs the full and the existing candidate lists for a
// source file without running the selection policy.
type CandidateReport struct {
	Source     SourceFile    `json:"source" yaml:"source"`
	Layout     ProjectLayout `json:"layout" yaml:"layout"`
	Candidates []Candidate   `json:"candidates" yaml:"candidates"`
	Existing   []Candidate   `json:"existing" yaml:"existing"`
	MostLikely *Candidate    `json:"most_likely,omitempty" yaml:"most_likely,omitempty"`
}
