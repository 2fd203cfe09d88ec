// internal/customer/registry.go
package customer

import (
	"strings"
	"sync"
)

// Registry holds all customers. Same collection contracts as the room
// catalog: mutations report success as a boolean and never partially apply.
type Registry struct {
	mu        sync.RWMutex
	customers map[string]*Customer
	order     []string // insertion order for stable GetAll
}

func NewRegistry() *Registry {
	return &Registry{
		customers: make(map[string]*Customer),
	}
}

func (g *Registry) Add(c *Customer) bool {
	if c == nil || c.ID == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.customers[c.ID]; exists {
		return false
	}
	g.customers[c.ID] = c
	g.order = append(g.order, c.ID)
	return true
}

func (g *Registry) Update(c *Customer) bool {
	if c == nil || c.ID == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.customers[c.ID]; !exists {
		return false
	}
	g.customers[c.ID] = c
	return true
}

func (g *Registry) Delete(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.customers[id]; !exists {
		return false
	}
	delete(g.customers, id)
	for i, existing := range g.order {
		if existing == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

func (g *Registry) GetByID(id string) *Customer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.customers[id]
}

func (g *Registry) GetAll() []*Customer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Customer, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.customers[id])
	}
	return out
}

func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.customers)
}

func (g *Registry) IsEmpty() bool {
	return g.Count() == 0
}

func (g *Registry) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.customers = make(map[string]*Customer)
	g.order = nil
}

// Search matches name and email case-insensitively, phone and id as plain
// substrings.
func (g *Registry) Search(keyword string) []*Customer {
	lower := strings.ToLower(keyword)
	return g.collect(func(c *Customer) bool {
		return strings.Contains(strings.ToLower(c.FullName), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.PhoneNumber, keyword) ||
			strings.Contains(c.ID, keyword)
	})
}

func (g *Registry) FilterVIP(vip bool) []*Customer {
	return g.collect(func(c *Customer) bool { return c.VIP == vip })
}

func (g *Registry) FilterByMinLoyalty(minPoints float64) []*Customer {
	return g.collect(func(c *Customer) bool { return c.LoyaltyPoints >= minPoints })
}

func (g *Registry) VIPCount() int {
	return len(g.FilterVIP(true))
}

// LoadCustomers bulk-replaces the registry, skipping nil/empty-id entries.
func (g *Registry) LoadCustomers(customers []*Customer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.customers = make(map[string]*Customer, len(customers))
	g.order = g.order[:0]
	for _, c := range customers {
		if c == nil || c.ID == "" {
			continue
		}
		if _, exists := g.customers[c.ID]; exists {
			continue
		}
		g.customers[c.ID] = c
		g.order = append(g.order, c.ID)
	}
}

func (g *Registry) collect(keep func(*Customer) bool) []*Customer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Customer, 0)
	for _, id := range g.order {
		c := g.customers[id]
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
