package entity

// BuildingEdge identifies which edge of its cell a wall or door segment
// occupies. The byte values are the terrain collaborator's wire codes.
type BuildingEdge byte

const (
	EdgeNorth BuildingEdge = iota
	EdgeEast
	EdgeSouth
	EdgeWest
	EdgeDiagNESW // diagonal NE-SW, triangle pieces only
	EdgeDiagNWSE // diagonal NW-SE, triangle pieces only
)

// Record is the canonical, already-normalized shape of one entity for a
// frame. The sync boundary resolves every upstream field alias into this
// struct once, so nothing downstream ever probes alternative field names.
// The engine holds read references only; it never mutates a Record.
type Record struct {
	ID       string
	Category Category

	// Anchor point in world pixels.
	X, Y float64

	// FootprintRadius expands the anchor for culling so wide sprites
	// don't pop at the viewport edge. Zero means point entity.
	FootprintRadius float64

	// Structural-cell fields, meaningful for foundations/walls/doors.
	CellX, CellY int
	Edge         BuildingEdge

	// Submersion state, meaningful for actors.
	OnWater    bool
	Snorkeling bool
}

// Collection is one category's entities keyed by stable id, as maintained
// by the network-sync collaborator.
type Collection map[string]*Record

// Snapshot is the stable per-frame view of every input collection. It is
// captured once at frame start; mutations arriving mid-frame go into the
// next snapshot, never this one.
type Snapshot struct {
	Collections map[Category]Collection
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Collections: make(map[Category]Collection)}
}

// Put inserts or replaces a record in its category collection.
func (s *Snapshot) Put(rec *Record) {
	if rec == nil {
		return
	}
	coll, ok := s.Collections[rec.Category]
	if !ok {
		coll = make(Collection)
		s.Collections[rec.Category] = coll
	}
	coll[rec.ID] = rec
}

// Delete removes a record by category and id. Empty collections are kept;
// an empty map and a missing map answer queries identically.
func (s *Snapshot) Delete(category Category, id string) {
	if coll, ok := s.Collections[category]; ok {
		delete(coll, id)
	}
}

// Get looks up a record by category and id.
func (s *Snapshot) Get(category Category, id string) (*Record, bool) {
	coll, ok := s.Collections[category]
	if !ok {
		return nil, false
	}
	rec, ok := coll[id]
	return rec, ok
}

// Count returns the total number of records across all categories.
func (s *Snapshot) Count() int {
	n := 0
	for _, coll := range s.Collections {
		n += len(coll)
	}
	return n
}
