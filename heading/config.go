package heading

// Config holds configuration for heading classification
type Config struct {
	// MinGenericLength is the minimum trimmed length of a generic heading
	// Default: 5
	MinGenericLength int `yaml:"min_generic_length"`

	// FileSuffixes reject generic headings that look like file names or
	// domains (lowercase)
	// Default: ".pdf", ".doc", ".com"
	FileSuffixes []string `yaml:"file_suffixes"`

	// H2Ratio, H3Ratio and H4Ratio derive the lower thresholds from the
	// largest size when the document has fewer distinct sizes than levels
	// Default: 0.9, 0.8, 0.7
	H2Ratio float64 `yaml:"h2_ratio"`
	H3Ratio float64 `yaml:"h3_ratio"`
	H4Ratio float64 `yaml:"h4_ratio"`

	// BoldMarkers are font-name substrings treated as bold by BoldSpans
	// Default: "bold", "black", "heavy"
	BoldMarkers []string `yaml:"bold_markers"`

	// Structured holds the numbered-heading strategy tables
	Structured StructuredConfig `yaml:"structured"`

	// Poster holds the one-page document rules
	Poster PosterConfig `yaml:"poster"`

	// Patches are output corrections for specific known documents
	Patches []Patch `yaml:"patches"`
}

// StructuredConfig holds the tables of the structured strategy
type StructuredConfig struct {
	// KnownLabels are unnumbered section titles accepted as H1 (lowercase).
	// Their sizes also set the size floor for numbered headings.
	// Default: "revision history", "acknowledgements", "table of contents"
	KnownLabels []string `yaml:"known_labels"`

	// BannedKeywords reject a heading containing any of them (lowercase)
	BannedKeywords []string `yaml:"banned_keywords"`

	// SkipPrefixes reject headings starting with any of them (lowercase)
	// Default: "chapter"
	SkipPrefixes []string `yaml:"skip_prefixes"`

	// IndexPageKeeper is the only text kept on index pages (lowercase)
	// Default: "table of contents"
	IndexPageKeeper string `yaml:"index_page_keeper"`

	// MedianRatio scales the median line size into the size floor when no
	// known label is present
	// Default: 0.9
	MedianRatio float64 `yaml:"median_ratio"`

	// MinLength is the minimum trimmed length of a heading
	// Default: 3
	MinLength int `yaml:"min_length"`

	// MaxSymbolRatio is the largest accepted fraction of characters that
	// are neither letters, digits nor spaces
	// Default: 0.7
	MaxSymbolRatio float64 `yaml:"max_symbol_ratio"`
}

// PosterConfig holds the one-page document rules
type PosterConfig struct {
	// MinUpperLength and MaxUpperLength bound the uppercase banner heading
	// Default: 5 and 60
	MinUpperLength int `yaml:"min_upper_length"`
	MaxUpperLength int `yaml:"max_upper_length"`

	// MinWords is the word count a sparse poster heading needs
	// Default: 3
	MinWords int `yaml:"min_words"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinGenericLength: 5,
		FileSuffixes:     []string{".pdf", ".doc", ".com"},
		H2Ratio:          0.9,
		H3Ratio:          0.8,
		H4Ratio:          0.7,
		BoldMarkers:      []string{"bold", "black", "heavy"},
		Structured:       DefaultStructuredConfig(),
		Poster: PosterConfig{
			MinUpperLength: 5,
			MaxUpperLength: 60,
			MinWords:       3,
		},
		Patches: DefaultPatches(),
	}
}

// DefaultStructuredConfig returns the default structured strategy tables
func DefaultStructuredConfig() StructuredConfig {
	return StructuredConfig{
		KnownLabels: []string{"revision history", "acknowledgements", "table of contents"},
		BannedKeywords: []string{
			"board", "committee", "department", "organization",
			"association", "university", "version", "date", "remarks",
		},
		SkipPrefixes:    []string{"chapter"},
		IndexPageKeeper: "table of contents",
		MedianRatio:     0.9,
		MinLength:       3,
		MaxSymbolRatio:  0.7,
	}
}
