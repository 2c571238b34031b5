package linter

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gs1ident/gs1syntax/internal/logging"
)

// isoOverrideFile is the YAML shape a build can supply in place of the
// compact compiled-in bit-field tables (spec.md §4.2: "Implementations may
// expose a build-time hook to replace these with richer data sources").
// Grounded on samoyed's own use of a structured config file (config.go) for
// its station configuration — the same "external file overrides compiled
// defaults" shape, applied here to ISO membership data instead of radio
// settings.
type isoOverrideFile struct {
	Numeric3166 []string `yaml:"iso3166_numeric"`
	Alpha2_3166 []string `yaml:"iso3166_alpha2"`
	Numeric4217 []string `yaml:"iso4217_numeric"`
}

// LoadISOData replaces the compiled-in ISO membership tables with the
// contents of a YAML file at path. It is intended to be called once during
// context construction, before any parsing happens; it never mutates the
// previous table in place, so any lookup already in flight on another
// goroutine (a different gs1.Context) keeps running against a complete,
// consistent table.
func LoadISOData(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f isoOverrideFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}
	next := &isoTables{
		numeric3166: setOf(f.Numeric3166...),
		alpha2_3166: setOf(f.Alpha2_3166...),
		numeric4217: setOf(f.Numeric4217...),
	}
	isoData = next
	logging.L.WithField("path", path).Info("loaded ISO country/currency override data")
	return nil
}
