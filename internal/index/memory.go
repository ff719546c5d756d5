package index

import (
	"slices"
	"sync"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/domain"
)

// MemoryIndex holds the ordered shortcut collection in memory.
// Order is insertion order; ids are unique.
type MemoryIndex struct {
	mu       sync.RWMutex
	byID     map[string]int // ID -> position in order
	order    []domain.Shortcut
	lastLoad time.Time // Timestamp of last Replace
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		byID: make(map[string]int),
	}
}

// Replace swaps the whole collection. Later duplicates of an id are dropped.
func (idx *MemoryIndex) Replace(shortcuts []domain.Shortcut) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.byID = make(map[string]int, len(shortcuts))
	idx.order = make([]domain.Shortcut, 0, len(shortcuts))
	for _, s := range shortcuts {
		if _, dup := idx.byID[s.ID]; dup {
			continue
		}
		idx.byID[s.ID] = len(idx.order)
		idx.order = append(idx.order, s)
	}
	idx.lastLoad = time.Now()
}

// Get retrieves a shortcut by ID
func (idx *MemoryIndex) Get(id string) (domain.Shortcut, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	pos, ok := idx.byID[id]
	if !ok {
		return domain.Shortcut{}, false
	}
	return idx.order[pos], true
}

// All returns a copy of the collection in display order
func (idx *MemoryIndex) All() []domain.Shortcut {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return slices.Clone(idx.order)
}

// Append adds a shortcut at the end. It reports false if the id is taken.
func (idx *MemoryIndex) Append(s domain.Shortcut) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.byID[s.ID]; exists {
		return false
	}
	idx.byID[s.ID] = len(idx.order)
	idx.order = append(idx.order, s)
	return true
}

// Delete removes a shortcut, keeping the relative order of the rest.
func (idx *MemoryIndex) Delete(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	pos, ok := idx.byID[id]
	if !ok {
		return false
	}
	idx.order = slices.Delete(idx.order, pos, pos+1)
	delete(idx.byID, id)
	for i := pos; i < len(idx.order); i++ {
		idx.byID[idx.order[i].ID] = i
	}
	return true
}

// Count returns the number of shortcuts in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.order)
}

// LastLoad returns the timestamp of the last Replace
func (idx *MemoryIndex) LastLoad() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastLoad
}
