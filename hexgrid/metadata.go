package hexgrid

import "github.com/milk9111/wargear/prefabs"

// MetaStore holds per-cell metadata keyed by coordinate, independent of the
// grid geometry, so it survives regrids.
type MetaStore struct {
	data map[Coord]map[string]any
}

func NewMetaStore() *MetaStore {
	return &MetaStore{data: make(map[Coord]map[string]any)}
}

// Get returns the metadata for c, or nil.
func (s *MetaStore) Get(c Coord) map[string]any {
	return s.data[c]
}

// Ensure returns the metadata for c, creating an empty map if needed.
func (s *MetaStore) Ensure(c Coord) map[string]any {
	m, ok := s.data[c]
	if !ok {
		m = make(map[string]any)
		s.data[c] = m
	}
	return m
}

// Set replaces the metadata for c. A nil map deletes it.
func (s *MetaStore) Set(c Coord, data map[string]any) {
	if data == nil {
		delete(s.data, c)
		return
	}
	s.data[c] = data
}

func (s *MetaStore) Len() int {
	return len(s.data)
}

// Seed merges the seed cells into the store.
func (s *MetaStore) Seed(cells []prefabs.CellSeedSpec) {
	for _, seed := range cells {
		m := s.Ensure(Coord{Col: seed.Col, Row: seed.Row})
		for k, v := range seed.Data {
			m[k] = v
		}
	}
}
