package colortable

import (
	"embed"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/*.csv
var tableFS embed.FS

// Size is the number of entries in every lookup table.
const Size = 256

// RGB is one table entry.
type RGB struct {
	R, G, B uint8
}

// Table is a 256-entry RGB lookup table.
type Table [Size]RGB

// names lists the bundled tables in index order.
var names = []string{"viridis", "plasma", "inferno", "magma", "cividis"}

var (
	loadOnce sync.Once
	tables   map[string]Table
	loadErr  error
)

func loadAll() {
	tables = make(map[string]Table, len(names))

	for _, name := range names {
		tbl, err := parseTable(name)
		if err != nil {
			loadErr = err
			return
		}

		tables[name] = tbl
	}
}

func parseTable(name string) (Table, error) {
	var tbl Table

	raw, err := tableFS.ReadFile("data/" + name + ".csv")
	if err != nil {
		return tbl, fmt.Errorf("colortable: %s: %w", name, err)
	}

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != Size {
		return tbl, fmt.Errorf("colortable: %s: %d rows, want %d", name, len(lines), Size)
	}

	for i, line := range lines {
		fields := strings.Split(strings.TrimSpace(line), ",")
		if len(fields) != 3 {
			return tbl, fmt.Errorf("colortable: %s row %d: %d fields, want 3", name, i, len(fields))
		}

		var ch [3]uint8

		for j, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil || v < 0 || v > 255 {
				return tbl, fmt.Errorf("colortable: %s row %d: bad value %q", name, i, f)
			}

			ch[j] = uint8(v)
		}

		tbl[i] = RGB{R: ch[0], G: ch[1], B: ch[2]}
	}

	return tbl, nil
}

// Names returns the bundled table names in index order.
func Names() []string {
	return append([]string(nil), names...)
}

// Load returns the bundled table with the given name (case-insensitive).
func Load(name string) (Table, error) {
	loadOnce.Do(loadAll)

	if loadErr != nil {
		return Table{}, loadErr
	}

	tbl, ok := tables[strings.ToLower(name)]
	if !ok {
		return Table{}, errUnknownTable(name)
	}

	return tbl, nil
}

// LoadIndex returns the bundled table with the given index, 0 to 4.
func LoadIndex(i int) (Table, error) {
	if i < 0 || i >= len(names) {
		return Table{}, fmt.Errorf("colortable: index out of range [0,%d]: %d", len(names)-1, i)
	}

	return Load(names[i])
}

// At returns the entry at index i, clamped to the table range.
func (t *Table) At(i int) RGB {
	if i < 0 {
		i = 0
	}

	if i >= Size {
		i = Size - 1
	}

	return t[i]
}

// Map returns the entry for a normalized value in [0,1]. Values outside the
// range clamp to the table ends; NaN returns black, which callers can use to
// mark missing data.
func (t *Table) Map(v float64) RGB {
	if math.IsNaN(v) {
		return RGB{}
	}

	// Clamp as a float: converting huge values or ±Inf to int overflows.
	if v <= 0 {
		return t[0]
	}

	if v >= 1 {
		return t[Size-1]
	}

	return t[int(v*(Size-1))]
}

// Reversed returns a copy of the table with the entry order flipped.
func (t *Table) Reversed() Table {
	var out Table

	for i := range t {
		out[i] = t[Size-1-i]
	}

	return out
}

// Palette returns the table as a stdlib color palette, for use with
// image.Paletted.
func (t *Table) Palette() color.Palette {
	out := make(color.Palette, Size)

	for i, e := range t {
		out[i] = color.RGBA{R: e.R, G: e.G, B: e.B, A: 255}
	}

	return out
}
