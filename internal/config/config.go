// Package config loads the configuration of the npltk command.
//
// Values are taken, in ascending priority, from defaults, an optional config
// file (yaml, toml or json), environment variables prefixed with NPLTK_ and
// command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/npillmayer/npltk/normalize"
	"github.com/npillmayer/npltk/tokenizer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Normalize normalize.Config `mapstructure:"normalize"`
	Tokenize  tokenizer.Config `mapstructure:"tokenize"`
	Output    OutputConfig     `mapstructure:"output"`
	LogLevel  string           `mapstructure:"log_level"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Normalize: normalize.DefaultConfig(),
		Tokenize:  tokenizer.DefaultConfig(),
		Output:    OutputConfig{Format: FormatText},
		LogLevel:  "error",
	}
}

// keys maps configuration keys to flag names.
var keys = [][2]string{
	{"normalize.unicode_nfc", "unicode-nfc"},
	{"normalize.whitespace", "whitespace"},
	{"normalize.invisible_chars", "invisible-chars"},
	{"normalize.zwj_zwnj", "zwj-zwnj"},
	{"normalize.halant_cleanup", "halant-cleanup"},
	{"normalize.diacritic_dedupe", "diacritic-dedupe"},
	{"normalize.postposition_split", "postposition-split"},
	{"tokenize.split_into_sentences", "split-sentences"},
	{"tokenize.keep_punct", "keep-punct"},
	{"output.format", "format"},
	{"log_level", "log-level"},
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	n := defaults.Normalize
	fs.Bool("unicode-nfc", n.UnicodeNFC, "Apply Unicode NFC normalization")
	fs.Bool("whitespace", n.Whitespace, "Canonicalize and collapse white space")
	fs.Bool("invisible-chars", n.InvisibleChars, "Remove control characters")
	fs.Bool("zwj-zwnj", n.ZWJZWNJ, "Remove zero width joiners and non-joiners")
	fs.Bool("halant-cleanup", n.HalantCleanup, "Remove space after halant and doubled halants")
	fs.Bool("diacritic-dedupe", n.DiacriticDedupe, "Collapse repeated anusvara and candrabindu")
	fs.Bool("postposition-split", n.PostpositionSplit, "Split postpositions off Devanagari words")
	fs.Bool("split-sentences", defaults.Tokenize.SplitIntoSentences, "Split text into sentences before tokenizing")
	fs.Bool("keep-punct", defaults.Tokenize.KeepPunct, "Report punctuation tokens")
	fs.StringP("format", "f", defaults.Output.Format, "Output format (text|json|yaml)")
	fs.String("log-level", defaults.LogLevel, "Trace level (debug|info|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("NPLTK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("npltk")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values which cannot be checked by type.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (text|json|yaml)", c.Output.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid log level %q (debug|info|error)", c.LogLevel)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	n := c.Normalize
	v.SetDefault("normalize.unicode_nfc", n.UnicodeNFC)
	v.SetDefault("normalize.whitespace", n.Whitespace)
	v.SetDefault("normalize.invisible_chars", n.InvisibleChars)
	v.SetDefault("normalize.zwj_zwnj", n.ZWJZWNJ)
	v.SetDefault("normalize.halant_cleanup", n.HalantCleanup)
	v.SetDefault("normalize.diacritic_dedupe", n.DiacriticDedupe)
	v.SetDefault("normalize.postposition_split", n.PostpositionSplit)
	v.SetDefault("tokenize.split_into_sentences", c.Tokenize.SplitIntoSentences)
	v.SetDefault("tokenize.keep_punct", c.Tokenize.KeepPunct)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds flags to their nested keys. Flags which have not been
// registered with fs are skipped.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, k := range keys {
		f := fs.Lookup(k[1])
		if f == nil {
			continue
		}
		if err := v.BindPFlag(k[0], f); err != nil {
			return err
		}
	}
	return nil
}
