package core

// TeamRecord holds one team's season metrics. Metric pointers are nil when
// the source file did not carry a usable value; nil means unknown, not zero.
type TeamRecord struct {
	Name string

	Wins          *float64
	Losses        *float64
	Ties          *float64
	PointsFor     *float64
	PointsAgainst *float64
	Yards         *float64
	Turnovers     *float64

	Conference string
	Division   string
}

// Dataset is an insertion-ordered set of team records keyed by team name.
// One Dataset is built per import and replaced wholesale, never mutated
// after the loader returns it.
type Dataset struct {
	names   []string
	records map[string]TeamRecord
}

func NewDataset() *Dataset {
	return &Dataset{records: make(map[string]TeamRecord)}
}

// Put inserts or overwrites the record under its name. A duplicate name
// keeps its original position in the selection order.
func (d *Dataset) Put(rec TeamRecord) {
	if _, exists := d.records[rec.Name]; !exists {
		d.names = append(d.names, rec.Name)
	}
	d.records[rec.Name] = rec
}

func (d *Dataset) Get(name string) (TeamRecord, bool) {
	rec, ok := d.records[name]
	return rec, ok
}

// Names returns team names in insertion order, for the selection list.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Dataset) Len() int {
	return len(d.names)
}
