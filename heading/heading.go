package heading

import (
	"encoding/json"
	"fmt"
)

// Level is the hierarchical level of a heading (H1-H4)
type Level int

const (
	LevelUnknown Level = iota
	H1                 // H1 - top-level section
	H2                 // H2 - section
	H3                 // H3 - subsection
	H4                 // H4 - sub-subsection
)

// String returns the outline label of the level ("H1".."H4")
func (l Level) String() string {
	switch l {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	case H4:
		return "H4"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the level as its label
func (l Level) MarshalJSON() ([]byte, error) {
	if l < H1 || l > H4 {
		return nil, fmt.Errorf("invalid heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level label
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a label such as "H2" into a Level
func ParseLevel(s string) (Level, error) {
	switch s {
	case "H1":
		return H1, nil
	case "H2":
		return H2, nil
	case "H3":
		return H3, nil
	case "H4":
		return H4, nil
	}
	return LevelUnknown, fmt.Errorf("unknown heading level %q", s)
}

// Heading is one outline entry
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Document is the extraction result of one file: its title and outline
type Document struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// NewDocument creates a result whose outline is empty, never nil
func NewDocument(title string, outline []Heading) Document {
	if outline == nil {
		outline = []Heading{}
	}
	return Document{Title: title, Outline: outline}
}

// SpanHeading is one entry of the legacy bold-span output
type SpanHeading struct {
	Text string `json:"text"`
	Page int    `json:"page"`
}
