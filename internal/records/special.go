package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// Special fusion categories.
const (
	CategoryEvolveCaught  = "evolve_caught"
	CategorySpecialFusion = "special_fusion"
	CategoryDeathStone    = "death_stone"
	CategoryException     = "exception"
)

// SpecialFusionSets lists the demons that cannot be produced by the basic
// fusion table. The sets are loaded and reported but do not change the
// generated statements.
type SpecialFusionSets struct {
	EvolveCaught  []string `json:"evolve_caught" yaml:"evolve_caught"`
	SpecialFusion []string `json:"special_fusion" yaml:"special_fusion"`
	DeathStone    []string `json:"death_stone" yaml:"death_stone"`
	Exception     []string `json:"exception" yaml:"exception"`
}

// ReadSpecialFusionSets decodes a JSON sets document. Duplicates are removed
// and every set is sorted.
func ReadSpecialFusionSets(r io.Reader) (*SpecialFusionSets, error) {
	var sets SpecialFusionSets
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("special fusion sets: %w", err)
	}
	return sets.normalize(), nil
}

// ReadSpecialFusionSetsYAML decodes a YAML sets document. An empty document
// yields empty sets.
func ReadSpecialFusionSetsYAML(r io.Reader) (*SpecialFusionSets, error) {
	var sets SpecialFusionSets
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil && err != io.EOF {
		return nil, fmt.Errorf("special fusion sets: %w", err)
	}
	return sets.normalize(), nil
}

// LoadSpecialFusionSets reads the sets document at path. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON.
func LoadSpecialFusionSets(path string) (*SpecialFusionSets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &rdf.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	read := ReadSpecialFusionSets
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadSpecialFusionSetsYAML
	}
	sets, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sets, nil
}

func (s *SpecialFusionSets) normalize() *SpecialFusionSets {
	for _, set := range []*[]string{&s.EvolveCaught, &s.SpecialFusion, &s.DeathStone, &s.Exception} {
		slices.Sort(*set)
		*set = slices.Compact(*set)
	}
	return s
}

// Categories returns the categories name belongs to, in declaration order.
func (s *SpecialFusionSets) Categories(name string) []string {
	var categories []string
	for _, c := range s.categories() {
		if _, ok := slices.BinarySearch(c.names, name); ok {
			categories = append(categories, c.name)
		}
	}
	return categories
}

// Counts returns the size of every category.
func (s *SpecialFusionSets) Counts() map[string]int {
	counts := make(map[string]int, 4)
	for _, c := range s.categories() {
		counts[c.name] = len(c.names)
	}
	return counts
}

type category struct {
	name  string
	names []string
}

func (s *SpecialFusionSets) categories() []category {
	return []category{
		{CategoryEvolveCaught, s.EvolveCaught},
		{CategorySpecialFusion, s.SpecialFusion},
		{CategoryDeathStone, s.DeathStone},
		{CategoryException, s.Exception},
	}
}
