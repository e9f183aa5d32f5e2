package diagram

import (
	"strings"

	"github.com/matzehuels/erdgraph/pkg/errors"
)

// Key marks a column as part of a key.
type Key string

const (
	KeyNone    Key = ""
	KeyPrimary Key = "PK"
	KeyForeign Key = "FK"
	KeyUnique  Key = "UK"
)

func (k Key) valid() bool {
	switch k {
	case KeyNone, KeyPrimary, KeyForeign, KeyUnique:
		return true
	}
	return false
}

// Column is a row of a table.
type Column struct {
	Name string `json:"name" toml:"name"`
	Type string `json:"type,omitempty" toml:"type,omitempty"`
	Key  Key    `json:"key,omitempty" toml:"key,omitempty"`
}

// Table is an entity with ordered columns.
type Table struct {
	Name    string   `json:"name" toml:"name"`
	Columns []Column `json:"columns" toml:"columns"`
}

// Column returns the index of the named column.
func (t Table) Column(name string) (int, bool) {
	for i, c := range t.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Endpoint addresses a whole table or, when Column is set, one of its
// columns. Its text form is "table" or "table.column".
type Endpoint struct {
	Table  string
	Column string
}

// ParseEndpoint splits s at the first dot.
func ParseEndpoint(s string) Endpoint {
	table, column, _ := strings.Cut(s, ".")
	return Endpoint{Table: table, Column: column}
}

func (e Endpoint) String() string {
	if e.Column == "" {
		return e.Table
	}
	return e.Table + "." + e.Column
}

// MarshalText implements encoding.TextMarshaler.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endpoint) UnmarshalText(text []byte) error {
	*e = ParseEndpoint(string(text))
	return nil
}

// Relation connects two endpoints.
type Relation struct {
	From Endpoint `json:"from" toml:"from"`
	To   Endpoint `json:"to" toml:"to"`
}

// Diagram is a complete entity-relationship model.
type Diagram struct {
	Title     string     `json:"title,omitempty" toml:"title,omitempty"`
	Tables    []Table    `json:"tables" toml:"tables"`
	Relations []Relation `json:"relations,omitempty" toml:"relations,omitempty"`
}

// Table looks up a table by name.
func (d *Diagram) Table(name string) (Table, bool) {
	for _, t := range d.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Validate checks names, uniqueness, keys and relation references.
func (d *Diagram) Validate() error {
	tables := make(map[string]Table, len(d.Tables))
	for _, t := range d.Tables {
		if err := errors.ValidateName("table", t.Name); err != nil {
			return err
		}
		if _, dup := tables[t.Name]; dup {
			return errors.New(errors.ErrCodeInvalidDiagram, "duplicate table %q", t.Name)
		}
		tables[t.Name] = t

		columns := make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			if err := errors.ValidateName("column", c.Name); err != nil {
				return err
			}
			if columns[c.Name] {
				return errors.New(errors.ErrCodeInvalidDiagram, "table %q: duplicate column %q", t.Name, c.Name)
			}
			columns[c.Name] = true
			if !c.Key.valid() {
				return errors.New(errors.ErrCodeInvalidDiagram, "column %s.%s: unknown key %q", t.Name, c.Name, c.Key)
			}
		}
	}

	for i, r := range d.Relations {
		for _, end := range []Endpoint{r.From, r.To} {
			t, ok := tables[end.Table]
			if !ok {
				return errors.New(errors.ErrCodeUnknownReference, "relation %d: unknown table %q", i, end.Table)
			}
			if end.Column == "" {
				continue
			}
			if _, ok := t.Column(end.Column); !ok {
				return errors.New(errors.ErrCodeUnknownReference, "relation %d: unknown column %q", i, end.String())
			}
		}
	}
	return nil
}
