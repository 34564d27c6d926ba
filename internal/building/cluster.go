// Package building groups structural cells (foundations, walls, doors)
// into connected building clusters and decides whether each cluster is
// enclosed. Lighting and the interior-debug view consume the results.
package building

import (
	"driftshore/internal/entity"
)

// CellKey identifies a foundation cell on the building grid.
type CellKey struct {
	X, Y int
}

// EdgeKey identifies one edge of one cell, where walls and doors live.
type EdgeKey struct {
	X, Y int
	Edge entity.BuildingEdge
}

// ClusterID identifies a connected building cluster. Ids are not stable
// across recomputations; callers resolve through ClusterOf each time.
type ClusterID int

// Cluster is one connected component of foundation cells.
type Cluster struct {
	ID    ClusterID
	Cells []CellKey

	// Enclosed is true when the perimeter wall/door coverage reaches the
	// configured threshold.
	Enclosed bool

	// Coverage introspection for the interior-debug view.
	PerimeterEdges int
	CoveredEdges   int
}

// CoverageRatio returns the covered share of the cluster's perimeter.
func (c *Cluster) CoverageRatio() float64 {
	if c.PerimeterEdges == 0 {
		return 0
	}
	return float64(c.CoveredEdges) / float64(c.PerimeterEdges)
}

// Resolver maintains the structural-cell collections and their derived
// clusters. Mutations mark the derivation dirty; clusters recompute
// lazily on the next query, so a burst of cell updates between frames
// costs one recomputation.
type Resolver struct {
	threshold float64

	foundations map[CellKey]struct{}
	covers      map[EdgeKey]struct{} // walls and doors both cover an edge

	dirty      bool
	clusters   map[ClusterID]*Cluster
	membership map[CellKey]ClusterID
	nextID     ClusterID
}

// NewResolver creates a resolver. threshold is the perimeter coverage
// ratio at which a cluster counts as enclosed (1.0 = no gaps).
func NewResolver(threshold float64) *Resolver {
	return &Resolver{
		threshold:   threshold,
		foundations: make(map[CellKey]struct{}),
		covers:      make(map[EdgeKey]struct{}),
		clusters:    make(map[ClusterID]*Cluster),
		membership:  make(map[CellKey]ClusterID),
	}
}

// SetFoundation adds a foundation cell.
func (r *Resolver) SetFoundation(x, y int) {
	key := CellKey{x, y}
	if _, exists := r.foundations[key]; exists {
		return
	}
	r.foundations[key] = struct{}{}
	r.dirty = true
}

// RemoveFoundation deletes a foundation cell. Its cluster membership is
// dropped immediately on the next recomputation; an emptied cluster is
// destroyed.
func (r *Resolver) RemoveFoundation(x, y int) {
	key := CellKey{x, y}
	if _, exists := r.foundations[key]; !exists {
		return
	}
	delete(r.foundations, key)
	r.dirty = true
}

// SetCover places a wall or door segment on a cell edge.
func (r *Resolver) SetCover(x, y int, edge entity.BuildingEdge) {
	key := EdgeKey{x, y, edge}
	if _, exists := r.covers[key]; exists {
		return
	}
	r.covers[key] = struct{}{}
	r.dirty = true
}

// RemoveCover deletes a wall or door segment from a cell edge.
func (r *Resolver) RemoveCover(x, y int, edge entity.BuildingEdge) {
	key := EdgeKey{x, y, edge}
	if _, exists := r.covers[key]; !exists {
		return
	}
	delete(r.covers, key)
	r.dirty = true
}

// ClusterOf returns the cluster id owning the given cell, if any.
func (r *Resolver) ClusterOf(x, y int) (ClusterID, bool) {
	r.recomputeIfDirty()
	id, ok := r.membership[CellKey{x, y}]
	return id, ok
}

// IsEnclosed reports whether a cluster's perimeter coverage reaches the
// enclosure threshold. Unknown ids are not enclosed.
func (r *Resolver) IsEnclosed(id ClusterID) bool {
	r.recomputeIfDirty()
	cluster, ok := r.clusters[id]
	return ok && cluster.Enclosed
}

// Cluster returns a cluster by id.
func (r *Resolver) Cluster(id ClusterID) (*Cluster, bool) {
	r.recomputeIfDirty()
	cluster, ok := r.clusters[id]
	return cluster, ok
}

// Clusters returns all current clusters.
func (r *Resolver) Clusters() []*Cluster {
	r.recomputeIfDirty()
	out := make([]*Cluster, 0, len(r.clusters))
	for _, c := range r.clusters {
		out = append(out, c)
	}
	return out
}

// IsInsideEnclosed reports whether a cell sits inside an enclosed
// cluster, the single question lighting asks per position.
func (r *Resolver) IsInsideEnclosed(x, y int) bool {
	id, ok := r.ClusterOf(x, y)
	return ok && r.IsEnclosed(id)
}

func (r *Resolver) recomputeIfDirty() {
	if !r.dirty {
		return
	}
	r.dirty = false

	r.clusters = make(map[ClusterID]*Cluster)
	r.membership = make(map[CellKey]ClusterID, len(r.foundations))

	visited := make(map[CellKey]struct{}, len(r.foundations))
	for start := range r.foundations {
		if _, seen := visited[start]; seen {
			continue
		}
		cells := r.floodFill(start, visited)
		cluster := &Cluster{ID: r.nextID, Cells: cells}
		r.nextID++
		r.analyze(cluster)
		r.clusters[cluster.ID] = cluster
		for _, cell := range cells {
			r.membership[cell] = cluster.ID
		}
	}
}

// floodFill collects the connected component containing start. Two cells
// connect when they share an edge.
func (r *Resolver) floodFill(start CellKey, visited map[CellKey]struct{}) []CellKey {
	var cells []CellKey
	queue := []CellKey{start}
	visited[start] = struct{}{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cells = append(cells, current)

		neighbors := [4]CellKey{
			{current.X, current.Y - 1},
			{current.X + 1, current.Y},
			{current.X, current.Y + 1},
			{current.X - 1, current.Y},
		}
		for _, n := range neighbors {
			if _, seen := visited[n]; seen {
				continue
			}
			if _, exists := r.foundations[n]; !exists {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return cells
}

// analyze enumerates the cluster's perimeter edges (cell edges with no
// neighboring foundation) and counts how many carry a wall or door.
func (r *Resolver) analyze(cluster *Cluster) {
	member := make(map[CellKey]struct{}, len(cluster.Cells))
	for _, cell := range cluster.Cells {
		member[cell] = struct{}{}
	}

	edges := [4]entity.BuildingEdge{entity.EdgeNorth, entity.EdgeEast, entity.EdgeSouth, entity.EdgeWest}
	for _, cell := range cluster.Cells {
		for _, edge := range edges {
			neighbor := adjacentCell(cell, edge)
			if _, interior := member[neighbor]; interior {
				continue
			}
			cluster.PerimeterEdges++
			if _, covered := r.covers[EdgeKey{cell.X, cell.Y, edge}]; covered {
				cluster.CoveredEdges++
			}
		}
	}

	cluster.Enclosed = cluster.PerimeterEdges > 0 &&
		cluster.CoverageRatio() >= r.threshold
}

func adjacentCell(cell CellKey, edge entity.BuildingEdge) CellKey {
	switch edge {
	case entity.EdgeNorth:
		return CellKey{cell.X, cell.Y - 1}
	case entity.EdgeEast:
		return CellKey{cell.X + 1, cell.Y}
	case entity.EdgeSouth:
		return CellKey{cell.X, cell.Y + 1}
	case entity.EdgeWest:
		return CellKey{cell.X - 1, cell.Y}
	default:
		return cell
	}
}

// SyncFromSnapshot rebuilds the cell collections from the structural
// categories of a frame snapshot. Used by hosts that receive whole
// collections rather than per-cell mutations.
func (r *Resolver) SyncFromSnapshot(snap *entity.Snapshot) {
	r.foundations = make(map[CellKey]struct{})
	r.covers = make(map[EdgeKey]struct{})
	if coll, ok := snap.Collections[entity.CategoryFoundation]; ok {
		for _, rec := range coll {
			r.foundations[CellKey{rec.CellX, rec.CellY}] = struct{}{}
		}
	}
	for _, cat := range [2]entity.Category{entity.CategoryWall, entity.CategoryDoor} {
		if coll, ok := snap.Collections[cat]; ok {
			for _, rec := range coll {
				r.covers[EdgeKey{rec.CellX, rec.CellY, rec.Edge}] = struct{}{}
			}
		}
	}
	r.dirty = true
}
