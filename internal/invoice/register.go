// internal/invoice/register.go
package invoice

import (
	"sync"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
)

// DefaultTaxRate applies when the caller does not supply one.
const DefaultTaxRate = 0.10

// Register holds every invoice. Revenue figures only count paid invoices;
// issued-but-unpaid amounts show up in UnpaidRevenue instead.
type Register struct {
	mu       sync.RWMutex
	invoices []*Invoice
}

func NewRegister() *Register {
	return &Register{}
}

// ==================== CRUD ====================

func (r *Register) Add(inv *Invoice) bool {
	if inv == nil || inv.ID() == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(inv.ID()) >= 0 {
		return false
	}
	r.invoices = append(r.invoices, inv)
	return true
}

func (r *Register) Update(inv *Invoice) bool {
	if inv == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(inv.ID())
	if i < 0 {
		return false
	}
	r.invoices[i] = inv
	return true
}

func (r *Register) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
	return true
}

func (r *Register) GetByID(id string) *Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	return r.invoices[i]
}

func (r *Register) GetAll() []*Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out
}

func (r *Register) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices)
}

func (r *Register) IsEmpty() bool {
	return r.Count() == 0
}

func (r *Register) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = nil
}

func (r *Register) Exists(id string) bool {
	return r.GetByID(id) != nil
}

// LoadInvoices bulk-replaces the register, skipping nil/empty-id entries.
func (r *Register) LoadInvoices(invoices []*Invoice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = r.invoices[:0]
	for _, inv := range invoices {
		if inv == nil || inv.ID() == "" {
			continue
		}
		if r.indexOf(inv.ID()) >= 0 {
			continue
		}
		r.invoices = append(r.invoices, inv)
	}
}

// indexOf requires the caller to hold the lock.
func (r *Register) indexOf(id string) int {
	for i, inv := range r.invoices {
		if inv.ID() == id {
			return i
		}
	}
	return -1
}

// ==================== Creation ====================

// CreateFromBooking issues a draft invoice for a booking at the default tax
// rate, dated now. Nil when the booking is nil.
func (r *Register) CreateFromBooking(b *booking.Booking) *Invoice {
	return r.CreateFromBookingWithRate(b, DefaultTaxRate)
}

func (r *Register) CreateFromBookingWithRate(b *booking.Booking, taxRate float64) *Invoice {
	if b == nil {
		return nil
	}
	inv := New(NewID(), b, time.Now(), taxRate, StatusDraft)
	if !r.Add(inv) {
		return nil
	}
	return inv
}

// ==================== Queries ====================

func (r *Register) ByBooking(bookingID string) []*Invoice {
	return r.collect(func(inv *Invoice) bool {
		return inv.Booking() != nil && inv.Booking().ID() == bookingID
	})
}

func (r *Register) ByCustomer(customerID string) []*Invoice {
	return r.collect(func(inv *Invoice) bool {
		return inv.Customer() != nil && inv.Customer().ID == customerID
	})
}

func (r *Register) ByStatus(status Status) []*Invoice {
	return r.collect(func(inv *Invoice) bool { return inv.Status() == status })
}

// ByDateRange lists invoices issued within [from, to], inclusive.
func (r *Register) ByDateRange(from, to time.Time) []*Invoice {
	return r.collect(func(inv *Invoice) bool {
		d := inv.IssueDate()
		return !d.Before(from) && !d.After(to)
	})
}

func (r *Register) collect(keep func(*Invoice) bool) []*Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Invoice, 0)
	for _, inv := range r.invoices {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	return out
}

// ==================== Aggregates ====================

// TotalRevenue sums the total of paid invoices.
func (r *Register) TotalRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, inv := range r.invoices {
		if inv.Status() == StatusPaid {
			total += inv.Total()
		}
	}
	return total
}

// TotalTax sums the tax amount of paid invoices.
func (r *Register) TotalTax() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, inv := range r.invoices {
		if inv.Status() == StatusPaid {
			total += inv.TaxAmount()
		}
	}
	return total
}

// UnpaidRevenue sums the total of every invoice not yet paid, cancelled ones
// included.
func (r *Register) UnpaidRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, inv := range r.invoices {
		if inv.Status() != StatusPaid {
			total += inv.Total()
		}
	}
	return total
}

// MonthlyRevenue restricts TotalRevenue to invoices issued in the given month.
func (r *Register) MonthlyRevenue(month time.Month, year int) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, inv := range r.invoices {
		if inv.Status() != StatusPaid {
			continue
		}
		d := inv.IssueDate()
		if d.Month() == month && d.Year() == year {
			total += inv.Total()
		}
	}
	return total
}

func (r *Register) PaidCount() int {
	return len(r.ByStatus(StatusPaid))
}

func (r *Register) UnpaidCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, inv := range r.invoices {
		if inv.Status() != StatusPaid {
			count++
		}
	}
	return count
}

// ==================== Status helpers ====================

func (r *Register) MarkInvoicePaid(id string) bool {
	inv := r.GetByID(id)
	if inv == nil {
		return false
	}
	inv.MarkPaid()
	return true
}

func (r *Register) CancelInvoice(id string) bool {
	inv := r.GetByID(id)
	if inv == nil {
		return false
	}
	inv.Cancel()
	return true
}
