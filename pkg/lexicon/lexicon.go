// Package lexicon holds the keyword tables driving the curation heuristics.
// Tables are plain declarative data loaded once at startup; the scoring code
// never mutates them.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// CategorySet is a named category with its keyword table. Order of category
// sets is significant, classification iterates them in declaration order.
type CategorySet struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

// Importance holds the five weighted tables used for importance scoring.
// Each keyword contributes its weight at most once per article.
type Importance struct {
	Funding   map[string]float64 `yaml:"funding"`
	Amounts   map[string]float64 `yaml:"amounts"`
	Stages    map[string]float64 `yaml:"stages"`
	Sectors   map[string]float64 `yaml:"sectors"`
	NewsTypes map[string]float64 `yaml:"news_types"`
}

// Tables returns the weighted tables in a fixed order.
func (i Importance) Tables() []map[string]float64 {
	return []map[string]float64{i.Funding, i.Amounts, i.Stages, i.Sectors, i.NewsTypes}
}

// Lexicon is the full set of keyword tables. Treat as immutable after load.
type Lexicon struct {
	StartupTerms  []string      `yaml:"startup_terms"`
	LocationTerms []string      `yaml:"location_terms"`
	Categories    []CategorySet `yaml:"categories"`
	Importance    Importance    `yaml:"importance"`
}

// Default returns the embedded lexicon. Panics only on a broken embed, which
// is a build defect, not a runtime condition.
func Default() *Lexicon {
	lex, err := parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return lex
}

// Load reads a lexicon from a YAML file, falling back to the embedded
// default when path is empty.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	lex, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}
	return lex, nil
}

func parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("unmarshal lexicon: %w", err)
	}
	if err := validate(&lex); err != nil {
		return nil, err
	}
	normalize(&lex)
	return &lex, nil
}

func validate(lex *Lexicon) error {
	if len(lex.StartupTerms) == 0 {
		return fmt.Errorf("startup_terms is empty")
	}
	if len(lex.LocationTerms) == 0 {
		return fmt.Errorf("location_terms is empty")
	}
	if len(lex.Categories) == 0 {
		return fmt.Errorf("categories is empty")
	}
	for _, c := range lex.Categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if len(c.Terms) == 0 {
			return fmt.Errorf("category %q has no terms", c.Name)
		}
	}
	return nil
}

// normalize lowercases all terms so matching against lowercased article text
// works without per-call case folding.
func normalize(lex *Lexicon) {
	lower := func(terms []string) {
		for i, t := range terms {
			terms[i] = strings.ToLower(strings.TrimSpace(t))
		}
	}
	lower(lex.StartupTerms)
	lower(lex.LocationTerms)
	for _, c := range lex.Categories {
		lower(c.Terms)
	}
	for _, table := range lex.Importance.Tables() {
		for k, w := range table {
			lk := strings.ToLower(strings.TrimSpace(k))
			if lk != k {
				delete(table, k)
				table[lk] = w
			}
		}
	}
}
