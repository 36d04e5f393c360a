// Package records reads the tabular game data: the demon table, the basic
// fusion table and the special-fusion sets.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geoknoesis/smt3-rdf/rdf"
	"github.com/geoknoesis/smt3-rdf/transform"
)

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("records: missing column")

// table is a CSV file with a header row.
type table struct {
	reader  *csv.Reader
	columns map[string]int
}

func newTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("line 1: %w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	return &table{reader: reader, columns: columns}, nil
}

// index returns the position of the first present column among names.
func (t *table) index(names ...string) (int, error) {
	for _, name := range names {
		if i, ok := t.columns[name]; ok {
			return i, nil
		}
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	return 0, fmt.Errorf("line 1: %w %s", ErrMissingColumn, strings.Join(quoted, " or "))
}

// each calls fn for every data row. Rows with a different field count than
// the header are rejected by the CSV reader with their line number.
func (t *table) each(fn func(row []string)) error {
	for {
		row, err := t.reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fn(row)
	}
}

// ReadDemons parses the demon table. Columns: name, race and lv (or level).
func ReadDemons(r io.Reader) ([]transform.Demon, error) {
	t, err := newTable(r)
	if err != nil {
		return nil, fmt.Errorf("demons: %w", err)
	}
	name, err := t.index("name")
	if err != nil {
		return nil, fmt.Errorf("demons: %w", err)
	}
	race, err := t.index("race")
	if err != nil {
		return nil, fmt.Errorf("demons: %w", err)
	}
	level, err := t.index("lv", "level")
	if err != nil {
		return nil, fmt.Errorf("demons: %w", err)
	}

	var demons []transform.Demon
	err = t.each(func(row []string) {
		demons = append(demons, transform.Demon{
			Name:  strings.TrimSpace(row[name]),
			Race:  strings.TrimSpace(row[race]),
			Level: strings.TrimSpace(row[level]),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("demons: %w", err)
	}
	return demons, nil
}

// ReadFusionRules parses the basic fusion table. Columns: result, demon1 and
// demon2.
func ReadFusionRules(r io.Reader) ([]transform.FusionRule, error) {
	t, err := newTable(r)
	if err != nil {
		return nil, fmt.Errorf("fusion rules: %w", err)
	}
	result, err := t.index("result")
	if err != nil {
		return nil, fmt.Errorf("fusion rules: %w", err)
	}
	demon1, err := t.index("demon1")
	if err != nil {
		return nil, fmt.Errorf("fusion rules: %w", err)
	}
	demon2, err := t.index("demon2")
	if err != nil {
		return nil, fmt.Errorf("fusion rules: %w", err)
	}

	var rules []transform.FusionRule
	err = t.each(func(row []string) {
		rules = append(rules, transform.FusionRule{
			Result: strings.TrimSpace(row[result]),
			Demon1: strings.TrimSpace(row[demon1]),
			Demon2: strings.TrimSpace(row[demon2]),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fusion rules: %w", err)
	}
	return rules, nil
}

// LoadDemons reads the demon table at path.
func LoadDemons(path string) ([]transform.Demon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &rdf.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	demons, err := ReadDemons(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return demons, nil
}

// LoadFusionRules reads the basic fusion table at path.
func LoadFusionRules(path string) ([]transform.FusionRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &rdf.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	rules, err := ReadFusionRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}
