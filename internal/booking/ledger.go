// internal/booking/ledger.go
package booking

import (
	"strings"
	"sync"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

// Ledger is the in-memory store of all bookings and the home of the
// availability check. It consults the room catalog only to enumerate rooms;
// it never owns room lifecycle.
type Ledger struct {
	mu       sync.RWMutex
	bookings []*Booking
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// ==================== CRUD ====================

// Add appends a booking. It must be valid and its id unused; the ledger is
// untouched on failure.
func (l *Ledger) Add(b *Booking) bool {
	if b == nil || !b.IsValid() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indexOf(b.ID()) >= 0 {
		return false
	}
	l.bookings = append(l.bookings, b)
	return true
}

func (l *Ledger) Update(b *Booking) bool {
	if b == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(b.ID())
	if i < 0 {
		return false
	}
	l.bookings[i] = b
	return true
}

func (l *Ledger) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
	return true
}

func (l *Ledger) GetByID(id string) *Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(id)
	if i < 0 {
		return nil
	}
	return l.bookings[i]
}

func (l *Ledger) GetAll() []*Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

func (l *Ledger) IsEmpty() bool {
	return l.Count() == 0
}

func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = nil
}

func (l *Ledger) Exists(id string) bool {
	return l.GetByID(id) != nil
}

// indexOf requires the caller to hold the lock.
func (l *Ledger) indexOf(id string) int {
	for i, b := range l.bookings {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

// ==================== Availability ====================

// IsRoomAvailable reports whether the room is free for the whole range.
// Every non-cancelled booking on the room blocks it; two ranges conflict
// unless one ends strictly before the other begins. The comparison is on
// closed intervals, so a shared boundary day (check-out of one equals
// check-in of the next) counts as a conflict: no same-day turnover.
//
// Room display status is deliberately ignored here; this check is the only
// availability gate.
func (l *Ledger) IsRoomAvailable(rm *room.Room, checkIn, checkOut time.Time) bool {
	if rm == nil {
		return false
	}
	in := civil(checkIn)
	out := civil(checkOut)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.bookings {
		if b.Room() == nil || b.Room().ID() != rm.ID() {
			continue
		}
		if b.Status() == StatusCancelled {
			continue
		}
		if !(out.Before(b.CheckInDate()) || in.After(b.CheckOutDate())) {
			return false
		}
	}
	return true
}

// AvailableRooms enumerates every catalog room free for the range.
func (l *Ledger) AvailableRooms(catalog *room.Catalog, checkIn, checkOut time.Time) []*room.Room {
	if catalog == nil {
		return nil
	}
	out := make([]*room.Room, 0)
	for _, rm := range catalog.GetAll() {
		if l.IsRoomAvailable(rm, checkIn, checkOut) {
			out = append(out, rm)
		}
	}
	return out
}

// AvailableRoomsByType narrows AvailableRooms to one variant.
func (l *Ledger) AvailableRoomsByType(catalog *room.Catalog, typ room.Type, checkIn, checkOut time.Time) []*room.Room {
	out := make([]*room.Room, 0)
	for _, rm := range l.AvailableRooms(catalog, checkIn, checkOut) {
		if rm.Type() == typ {
			out = append(out, rm)
		}
	}
	return out
}

// ==================== Queries ====================

// Search matches booking id and room id as plain substrings and the customer
// name case-insensitively.
func (l *Ledger) Search(keyword string) []*Booking {
	lower := strings.ToLower(keyword)
	return l.collect(func(b *Booking) bool {
		if strings.Contains(b.ID(), keyword) {
			return true
		}
		if b.Customer() != nil && strings.Contains(strings.ToLower(b.Customer().FullName), lower) {
			return true
		}
		return b.Room() != nil && strings.Contains(b.Room().ID(), keyword)
	})
}

// Criteria is a structured booking filter; set fields are AND-combined and
// matched exactly.
type Criteria struct {
	Status     *Status
	CustomerID *string
	RoomID     *string
}

func (l *Ledger) Filter(criteria Criteria) []*Booking {
	return l.collect(func(b *Booking) bool {
		if criteria.Status != nil && b.Status() != *criteria.Status {
			return false
		}
		if criteria.CustomerID != nil {
			if b.Customer() == nil || b.Customer().ID != *criteria.CustomerID {
				return false
			}
		}
		if criteria.RoomID != nil {
			if b.Room() == nil || b.Room().ID() != *criteria.RoomID {
				return false
			}
		}
		return true
	})
}

func (l *Ledger) BookingsByStatus(status Status) []*Booking {
	return l.collect(func(b *Booking) bool { return b.Status() == status })
}

func (l *Ledger) CustomerBookings(customerID string) []*Booking {
	return l.collect(func(b *Booking) bool {
		return b.Customer() != nil && b.Customer().ID == customerID
	})
}

func (l *Ledger) collect(keep func(*Booking) bool) []*Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Booking, 0)
	for _, b := range l.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// ==================== Revenue ====================

// TotalRevenue sums the total price of checked-out bookings. Pending,
// confirmed and in-house stays are not revenue yet.
func (l *Ledger) TotalRevenue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, b := range l.bookings {
		if b.Status() == StatusCheckedOut {
			total += b.TotalPrice()
		}
	}
	return total
}

// MonthlyRevenue restricts TotalRevenue to bookings that checked out in the
// given month.
func (l *Ledger) MonthlyRevenue(month time.Month, year int) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, b := range l.bookings {
		if b.Status() != StatusCheckedOut {
			continue
		}
		out := b.CheckOutDate()
		if out.Month() == month && out.Year() == year {
			total += b.TotalPrice()
		}
	}
	return total
}

func (l *Ledger) TotalBookings() int {
	return l.Count()
}

func (l *Ledger) CompletedBookings() int {
	return len(l.BookingsByStatus(StatusCheckedOut))
}
