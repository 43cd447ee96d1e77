package normalize

// Config selects the rules of a normalization pipeline. Every flag
// enables one rule. The relative order of the rules is fixed and does not
// depend on the configuration.
type Config struct {
	UnicodeNFC        bool `mapstructure:"unicode_nfc" json:"unicode_nfc" yaml:"unicode_nfc"`
	Whitespace        bool `mapstructure:"whitespace" json:"whitespace" yaml:"whitespace"`
	InvisibleChars    bool `mapstructure:"invisible_chars" json:"invisible_chars" yaml:"invisible_chars"`
	ZWJZWNJ           bool `mapstructure:"zwj_zwnj" json:"zwj_zwnj" yaml:"zwj_zwnj"`
	HalantCleanup     bool `mapstructure:"halant_cleanup" json:"halant_cleanup" yaml:"halant_cleanup"`
	DiacriticDedupe   bool `mapstructure:"diacritic_dedupe" json:"diacritic_dedupe" yaml:"diacritic_dedupe"`
	PostpositionSplit bool `mapstructure:"postposition_split" json:"postposition_split" yaml:"postposition_split"`
}

// DefaultConfig enables all rules.
func DefaultConfig() Config {
	return Config{
		UnicodeNFC:        true,
		Whitespace:        true,
		InvisibleChars:    true,
		ZWJZWNJ:           true,
		HalantCleanup:     true,
		DiacriticDedupe:   true,
		PostpositionSplit: true,
	}
}

// catalogue lists all rules in pipeline order, together with the
// configuration flag enabling each of them.
func (cfg Config) catalogue() []struct {
	enabled bool
	rule    Rule
} {
	return []struct {
		enabled bool
		rule    Rule
	}{
		{cfg.UnicodeNFC, UnicodeNFC{}},
		{cfg.Whitespace, WhitespaceNormalize{}},
		{cfg.InvisibleChars, RemoveInvisibleChars{}},
		{cfg.ZWJZWNJ, JoinerCleanup{}},
		{cfg.HalantCleanup, HalantCleanup{}},
		{cfg.DiacriticDedupe, DiacriticDedupe{}},
		{cfg.PostpositionSplit, PostpositionSplit{MinRootLen: DefaultMinRootLen}},
	}
}
