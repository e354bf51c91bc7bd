package bncc

// Group is a named list of records inside a band.
type Group struct {
	Name    string
	Records []Record
}

// BandEntry holds the groups of one band in first-use order.
type BandEntry struct {
	Band   Band
	Groups []*Group
	index  map[string]*Group
}

func (e *BandEntry) group(name string) *Group {
	if g, ok := e.index[name]; ok {
		return g
	}
	g := &Group{Name: name}
	e.index[name] = g
	e.Groups = append(e.Groups, g)
	return g
}

// Total is the number of records across the band's groups.
func (e *BandEntry) Total() int {
	n := 0
	for _, g := range e.Groups {
		n += len(g.Records)
	}
	return n
}

// Tree is the curriculum tree: every band, in display order, with its groups.
type Tree struct {
	entries []*BandEntry
	byKey   map[BandKey]*BandEntry
}

// NewTree returns a tree with all eight bands present and empty.
func NewTree() *Tree {
	t := &Tree{byKey: make(map[BandKey]*BandEntry, len(bands))}
	for _, b := range bands {
		e := &BandEntry{Band: b, index: make(map[string]*Group)}
		t.entries = append(t.entries, e)
		t.byKey[b.Key] = e
	}
	return t
}

// Build classifies records into a new tree.
func Build(records []Record) *Tree {
	t := NewTree()
	for _, r := range records {
		t.Add(r)
	}
	return t
}

// Add classifies r and appends a copy of it to every band it belongs to.
// It reports whether the record was placed at all.
func (t *Tree) Add(r Record) bool {
	p, ok := Classify(r.Code)
	if !ok {
		return false
	}
	placed := false
	for _, key := range p.Bands {
		e, ok := t.byKey[key]
		if !ok {
			continue
		}
		g := e.group(p.Group)
		g.Records = append(g.Records, r)
		placed = true
	}
	return placed
}

// Entries returns the bands in display order.
func (t *Tree) Entries() []*BandEntry {
	return t.entries
}

// Entry returns the band entry for key.
func (t *Tree) Entry(key BandKey) (*BandEntry, bool) {
	e, ok := t.byKey[key]
	return e, ok
}

// Total counts every record in the tree; fan-out copies count separately.
func (t *Tree) Total() int {
	n := 0
	for _, e := range t.entries {
		n += e.Total()
	}
	return n
}

// FlatRecord is a record merged with its band and group, as produced by
// getAllCompetencias() in the generated module.
type FlatRecord struct {
	Record
	Band      BandKey
	BandTitle string
	Group     string
	Kind      string
}

// Flatten lists every record with its band title, group name and kind tag.
func (t *Tree) Flatten() []FlatRecord {
	var out []FlatRecord
	for _, e := range t.entries {
		for _, g := range e.Groups {
			for _, r := range g.Records {
				out = append(out, FlatRecord{
					Record:    r,
					Band:      e.Band.Key,
					BandTitle: e.Band.Title,
					Group:     g.Name,
					Kind:      e.Band.Stage.Kind(),
				})
			}
		}
	}
	return out
}

// ByBand flattens the tree and keeps the records whose band title matches key's.
// Unknown keys yield nil.
func (t *Tree) ByBand(key BandKey) []FlatRecord {
	e, ok := t.byKey[key]
	if !ok {
		return nil
	}
	var out []FlatRecord
	for _, fr := range t.Flatten() {
		if fr.BandTitle == e.Band.Title {
			out = append(out, fr)
		}
	}
	return out
}
