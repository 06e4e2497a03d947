// Package guide holds the prose side of the repository: what each pattern is,
// its tradeoffs, and how they compare.
package guide

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	// ErrEmptyCatalog is returned when a catalogue lists no patterns.
	ErrEmptyCatalog = errors.New("guide: catalog has no patterns")

	// ErrInvalidPattern is returned when a pattern entry misses a required field.
	ErrInvalidPattern = errors.New("guide: invalid pattern")
)

// NotFoundError is returned by Lookup for unknown pattern names.
type NotFoundError struct{ Name string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return "guide: no pattern named " + strconv.Quote(e.Name)
}

// Pattern is one catalogue entry.
type Pattern struct {
	Name          string   `yaml:"name"`
	Kind          string   `yaml:"kind"`
	Summary       string   `yaml:"summary"`
	Advantages    []string `yaml:"advantages"`
	Disadvantages []string `yaml:"disadvantages"`
}

// Catalog is the full set of explained patterns.
type Catalog struct {
	Patterns   []Pattern `yaml:"patterns"`
	Conclusion string    `yaml:"conclusion"`
}

// Load returns the catalogue shipped with the binary.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes and validates a YAML catalogue.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("guide: decode catalog: %w", err)
	}
	if len(c.Patterns) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, p := range c.Patterns {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidPattern, i)
		}
		if strings.TrimSpace(p.Summary) == "" {
			return nil, fmt.Errorf("%w: %q has no summary", ErrInvalidPattern, p.Name)
		}
	}
	return &c, nil
}

// Lookup finds a pattern by name, ignoring case.
func (c *Catalog) Lookup(name string) (Pattern, error) {
	for _, p := range c.Patterns {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Pattern{}, NotFoundError{Name: name}
}

// Names returns the pattern names in catalogue order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		out = append(out, p.Name)
	}
	return out
}

// Compare renders the advantages/disadvantages table.
func (c *Catalog) Compare(w io.Writer) error {
	rows := make([][]string, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		rows = append(rows, []string{
			p.Name,
			p.Kind,
			strings.Join(p.Advantages, "\n"),
			strings.Join(p.Disadvantages, "\n"),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Pattern", "Kind", "Advantages", "Disadvantages")
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("guide: build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("guide: render table: %w", err)
	}
	if c.Conclusion != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", c.Conclusion); err != nil {
			return fmt.Errorf("guide: write conclusion: %w", err)
		}
	}
	return nil
}

// Explain writes the prose for a single pattern.
func (c *Catalog) Explain(w io.Writer, name string) error {
	p, err := c.Lookup(name)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n%s\n", p.Name, p.Kind, p.Summary)
	writeList(&b, "Advantages", p.Advantages)
	writeList(&b, "Disadvantages", p.Disadvantages)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("guide: explain %s: %w", p.Name, err)
	}
	return nil
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
}
