package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pairwise/ipo"
)

// Factor is one row of the factor table.
type Factor struct {
	Name   string   // heading, e.g. "Browser"
	Levels []string // level labels in level-index order
}

// Catalog maps level names to ipo.Values and back.
type Catalog struct {
	factors []Factor
	source  string
	index   map[string]ipo.Value
}

// NamePair is one row of the infeasible-pair table, still unresolved.
type NamePair struct {
	First, Second string
	Line          int // 1-based line in the source table
}

// LoadFactors reads the factor table at path.
func LoadFactors(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: it wasn't possible to read from %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	return ReadFactors(f, path)
}

// ReadFactors parses a factor table; source names it in error messages.
//
// Complexity: O(total number of cells).
func ReadFactors(r io.Reader, source string) (*Catalog, error) {
	rows, err := readTable(r, source)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		factors: make([]Factor, 0, len(rows)),
		source:  source,
		index:   make(map[string]ipo.Value),
	}
	for i, row := range rows {
		if len(row) == 0 || row[0] == "" {
			return nil, fmt.Errorf("%w: %s line %d", ErrMalformedFactor, source, i+1)
		}
		f := Factor{Name: row[0], Levels: append([]string(nil), row[1:]...)}
		for l, name := range f.Levels {
			key := normalize(name)
			if _, taken := c.index[key]; !taken {
				c.index[key] = ipo.Value{Param: i, Level: l}
			}
		}
		c.factors = append(c.factors, f)
	}

	return c, nil
}

// Factors returns a copy of the parsed factors.
func (c *Catalog) Factors() []Factor {
	out := make([]Factor, len(c.factors))
	for i, f := range c.factors {
		out[i] = Factor{Name: f.Name, Levels: append([]string(nil), f.Levels...)}
	}

	return out
}

// Source is the path or name the catalog was read from.
func (c *Catalog) Source() string { return c.source }

// Check verifies the table agrees with the declared level counts.
//
// Errors: ipo.ErrConfiguration on a factor-count or level-count mismatch.
func (c *Catalog) Check(levels []int) error {
	if len(c.factors) != len(levels) {
		return fmt.Errorf("%w: the number of factors in %s (%d) doesn't correspond to the specified value (%d)",
			ipo.ErrConfiguration, c.source, len(c.factors), len(levels))
	}
	for i, f := range c.factors {
		if len(f.Levels) != levels[i] {
			return fmt.Errorf("%w: factor %q has %d levels in %s, %d specified",
				ipo.ErrConfiguration, f.Name, len(f.Levels), c.source, levels[i])
		}
	}

	return nil
}

// Lookup resolves a level name.
//
// Errors: ipo.ErrUnknownValue when no factor declares the name.
func (c *Catalog) Lookup(name string) (ipo.Value, error) {
	v, ok := c.index[normalize(name)]
	if !ok {
		return ipo.Value{}, fmt.Errorf("%w: %s level doesn't belong to any parameter in the %s file",
			ipo.ErrUnknownValue, name, c.source)
	}

	return v, nil
}

// Heading returns the factor name of parameter p.
func (c *Catalog) Heading(p int) string {
	if p < 0 || p >= len(c.factors) {
		return ""
	}

	return c.factors[p].Name
}

// Label returns the level name of v, or "" if v is outside the table.
func (c *Catalog) Label(v ipo.Value) string {
	if v.Param < 0 || v.Param >= len(c.factors) {
		return ""
	}
	levels := c.factors[v.Param].Levels
	if v.Level < 0 || v.Level >= len(levels) {
		return ""
	}

	return levels[v.Level]
}

// LoadInfeasible reads the infeasible-pair table at path.
func LoadInfeasible(path string) ([]NamePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: it wasn't possible to read from %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	return ReadInfeasible(f, path)
}

// ReadInfeasible parses an infeasible-pair table.
//
// Errors: ErrMalformedPair for any line without exactly two elements.
func ReadInfeasible(r io.Reader, source string) ([]NamePair, error) {
	rows, err := readTable(r, source)
	if err != nil {
		return nil, err
	}
	out := make([]NamePair, 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: %s line %d has %d", ErrMalformedPair, source, i+1, len(row))
		}
		out = append(out, NamePair{First: row[0], Second: row[1], Line: i + 1})
	}

	return out, nil
}

// Resolve maps every name pair onto d and returns the Infeasibility Set.
//
// Errors:
//   - ipo.ErrUnknownValue for a name not in the catalog.
//   - whatever ipo.Constraints.Add rejects (e.g. two levels of one factor).
func (c *Catalog) Resolve(d ipo.Domain, pairs []NamePair) (*ipo.Constraints, error) {
	cons := ipo.NewConstraints(d)
	for _, np := range pairs {
		a, err := c.Lookup(np.First)
		if err != nil {
			return nil, err
		}
		b, err := c.Lookup(np.Second)
		if err != nil {
			return nil, err
		}
		if err = cons.Add(a, b); err != nil {
			return nil, fmt.Errorf("infeasible pair %q;%q (line %d): %w", np.First, np.Second, np.Line, err)
		}
	}

	return cons, nil
}

// readTable reads all semicolon-separated records, trimming every cell.
func readTable(r io.Reader, source string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: it wasn't possible to read from %s: %v", ErrUnreadable, source, err)
	}
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}

	return rows, nil
}

// normalize folds case and drops all whitespace.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
