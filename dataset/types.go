package dataset

import (
	"sort"
	"time"

	"github.com/le0holt/Fares/netex"
)

// Row is one positional record of a source spreadsheet.
type Row []string

// Col returns the trimmed-at-read cell at index i, or "" when the row is
// too short. Source rows are ragged: spreadsheet readers drop trailing
// empty cells.
func (r Row) Col(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table is a positional spreadsheet table with the header row already
// removed. Column meaning is fixed by position, per the source workbooks.
type Table struct {
	Rows []Row
}

// Empty reports whether the table holds no data rows
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Width reports the widest row's column count
func (t Table) Width() int {
	w := 0
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Snapshot is the immutable in-memory bundle of parsed tariff documents,
// the route table and the stop table. Engines read a snapshot and never
// mutate it; a dataset refresh produces a new one.
type Snapshot struct {
	Documents map[string]netex.Document
	Routes    Table
	Stops     Table
	LoadedAt  time.Time
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{Documents: map[string]netex.Document{}}
}

// DocumentKeys returns all tariff document keys in ascending order. Merge
// order over documents is defined by this ordering.
func (s *Snapshot) DocumentKeys() []string {
	keys := make([]string, 0, len(s.Documents))
	for k := range s.Documents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
