// internal/room/catalog.go
package room

import (
	"sort"
	"strings"
	"sync"
)

// Catalog is the single authoritative index of rooms, keyed by identifier.
// It owns no I/O; the storage package loads and flushes it. All methods are
// safe for use from the UI thread and background flush.
type Catalog struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewCatalog() *Catalog {
	return &Catalog{
		rooms: make(map[string]*Room),
	}
}

// ==================== CRUD ====================

// Add indexes a new room. Returns false if the room is nil, has an empty id,
// or the id is already taken. The catalog is untouched on failure.
func (c *Catalog) Add(r *Room) bool {
	if r == nil || r.ID() == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rooms[r.ID()]; exists {
		return false
	}
	c.rooms[r.ID()] = r
	return true
}

// Update replaces the stored room with the same id. Returns false if absent.
func (c *Catalog) Update(r *Room) bool {
	if r == nil || r.ID() == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rooms[r.ID()]; !exists {
		return false
	}
	c.rooms[r.ID()] = r
	return true
}

// Delete removes a room unconditionally. There is no guard against in-flight
// bookings; the ledger re-derives availability from bookings, and storage
// drops bookings whose room no longer resolves.
func (c *Catalog) Delete(id string) bool {
	key := normalizeID(id)
	if key == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rooms[key]; !exists {
		return false
	}
	delete(c.rooms, key)
	return true
}

// GetByID looks up a room, case-insensitively.
func (c *Catalog) GetByID(id string) *Room {
	key := normalizeID(id)
	if key == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rooms[key]
}

func (c *Catalog) GetAll() []*Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		out = append(out, r)
	}
	return out
}

func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}

func (c *Catalog) IsEmpty() bool {
	return c.Count() == 0
}

func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms = make(map[string]*Room)
}

func (c *Catalog) Exists(id string) bool {
	return c.GetByID(id) != nil
}

// LoadRooms bulk-replaces the catalog contents, skipping nil entries and
// entries without an id. Used by the storage layer.
func (c *Catalog) LoadRooms(rooms []*Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms = make(map[string]*Room, len(rooms))
	for _, r := range rooms {
		if r == nil || r.ID() == "" {
			continue
		}
		c.rooms[r.ID()] = r
	}
}

// ==================== Queries ====================

func (c *Catalog) FindByType(typ Type) []*Room {
	return c.collect(func(r *Room) bool { return r.Type() == typ })
}

func (c *Catalog) FindByStatus(status Status) []*Room {
	return c.collect(func(r *Room) bool { return r.Status() == status })
}

func (c *Catalog) FindByFloor(floor int) []*Room {
	return c.collect(func(r *Room) bool { return r.Floor() == floor })
}

// FindAvailable lists rooms whose display status is AVAILABLE. This is a UI
// convenience; booking flows must still run the ledger overlap check.
func (c *Catalog) FindAvailable() []*Room {
	return c.FindByStatus(StatusAvailable)
}

func (c *Catalog) FindAvailableByType(typ Type) []*Room {
	return c.collect(func(r *Room) bool { return r.Type() == typ && r.IsAvailable() })
}

func (c *Catalog) FindByPriceRange(minPrice, maxPrice float64) []*Room {
	return c.collect(func(r *Room) bool {
		return r.BasePrice() >= minPrice && r.BasePrice() <= maxPrice
	})
}

// Search matches a keyword against id, type name, status name and
// description, case-insensitive. An empty keyword returns everything.
func (c *Catalog) Search(keyword string) []*Room {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return c.GetAll()
	}
	return c.collect(func(r *Room) bool {
		return strings.Contains(strings.ToLower(r.ID()), keyword) ||
			strings.Contains(strings.ToLower(r.Type().DisplayName()), keyword) ||
			strings.Contains(strings.ToLower(r.Status().DisplayName()), keyword) ||
			strings.Contains(strings.ToLower(r.Description()), keyword)
	})
}

// Criteria is a structured filter; set fields are AND-combined.
type Criteria struct {
	Type      *Type
	Status    *Status
	Floor     *int
	Available *bool
	MinPrice  *float64
	MaxPrice  *float64
}

func (c *Catalog) Filter(criteria Criteria) []*Room {
	return c.collect(func(r *Room) bool {
		if criteria.Type != nil && r.Type() != *criteria.Type {
			return false
		}
		if criteria.Status != nil && r.Status() != *criteria.Status {
			return false
		}
		if criteria.Floor != nil && r.Floor() != *criteria.Floor {
			return false
		}
		if criteria.Available != nil && r.IsAvailable() != *criteria.Available {
			return false
		}
		if criteria.MinPrice != nil && r.BasePrice() < *criteria.MinPrice {
			return false
		}
		if criteria.MaxPrice != nil && r.BasePrice() > *criteria.MaxPrice {
			return false
		}
		return true
	})
}

func (c *Catalog) collect(keep func(*Room) bool) []*Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Room, 0)
	for _, r := range c.rooms {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ==================== Sorting ====================

func (c *Catalog) SortByPriceAscending() []*Room {
	out := c.GetAll()
	sort.SliceStable(out, func(i, j int) bool { return out[i].BasePrice() < out[j].BasePrice() })
	return out
}

func (c *Catalog) SortByPriceDescending() []*Room {
	out := c.GetAll()
	sort.SliceStable(out, func(i, j int) bool { return out[i].BasePrice() > out[j].BasePrice() })
	return out
}

func (c *Catalog) SortByID() []*Room {
	out := c.GetAll()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (c *Catalog) SortByFloor() []*Room {
	out := c.GetAll()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Floor() < out[j].Floor() })
	return out
}

func (c *Catalog) SortByType() []*Room {
	order := map[Type]int{TypeStandard: 0, TypeVIP: 1, TypeDeluxe: 2}
	out := c.GetAll()
	sort.SliceStable(out, func(i, j int) bool { return order[out[i].Type()] < order[out[j].Type()] })
	return out
}

// ==================== Statistics ====================

func (c *Catalog) CountByType() map[Type]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make(map[Type]int)
	for _, r := range c.rooms {
		counts[r.Type()]++
	}
	return counts
}

func (c *Catalog) CountByStatus() map[Status]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make(map[Status]int)
	for _, r := range c.rooms {
		counts[r.Status()]++
	}
	return counts
}

func (c *Catalog) CountByFloor() map[int]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make(map[int]int)
	for _, r := range c.rooms {
		counts[r.Floor()]++
	}
	return counts
}

// TotalPotentialRevenue is the sum of every room's one-night price, i.e. the
// revenue of a fully booked single night.
func (c *Catalog) TotalPotentialRevenue() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, r := range c.rooms {
		price, err := r.CalculatePrice(1)
		if err != nil {
			continue
		}
		total += price
	}
	return total
}

func (c *Catalog) MostExpensive() *Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var best *Room
	for _, r := range c.rooms {
		if best == nil || r.BasePrice() > best.BasePrice() {
			best = r
		}
	}
	return best
}

func (c *Catalog) Cheapest() *Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var best *Room
	for _, r := range c.rooms {
		if best == nil || r.BasePrice() < best.BasePrice() {
			best = r
		}
	}
	return best
}

// ==================== Status helpers ====================

// OccupyRoom transitions AVAILABLE -> OCCUPIED. False if the room is missing
// or not available.
func (c *Catalog) OccupyRoom(id string) bool {
	r := c.GetByID(id)
	if r == nil || !r.IsAvailable() {
		return false
	}
	r.Occupy()
	return true
}

// ReleaseRoom transitions OCCUPIED -> CLEANING.
func (c *Catalog) ReleaseRoom(id string) bool {
	r := c.GetByID(id)
	if r == nil || r.Status() != StatusOccupied {
		return false
	}
	r.Release()
	return true
}

func (c *Catalog) MarkRoomAvailable(id string) bool {
	r := c.GetByID(id)
	if r == nil {
		return false
	}
	r.MarkAvailable()
	return true
}

func (c *Catalog) MarkRoomMaintenance(id string) bool {
	r := c.GetByID(id)
	if r == nil {
		return false
	}
	r.MarkMaintenance()
	return true
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
