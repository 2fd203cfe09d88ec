// internal/invoice/invoice.go
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
)

// Status of an invoice. Transitions are unguarded: back-office staff may
// reopen a paid invoice or re-issue a cancelled one to correct mistakes.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusIssued    Status = "ISSUED"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

var statusNames = map[Status]string{
	StatusDraft:     "Draft",
	StatusIssued:    "Issued",
	StatusPaid:      "Paid",
	StatusCancelled: "Cancelled",
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) DisplayName() string {
	return statusNames[s]
}

// StatusFromString matches the enum name or display name, ignoring case.
func StatusFromString(text string) (Status, bool) {
	for status, name := range statusNames {
		if strings.EqualFold(text, string(status)) || strings.EqualFold(text, name) {
			return status, true
		}
	}
	return "", false
}

func Statuses() []Status {
	return []Status{StatusDraft, StatusIssued, StatusPaid, StatusCancelled}
}

// Invoice bills one booking. Subtotal mirrors the booking's total price; tax
// and total are derived and recomputed whenever the booking or the tax rate
// changes.
type Invoice struct {
	id        string
	booking   *booking.Booking
	issueDate time.Time
	taxRate   float64
	subtotal  float64
	taxAmount float64
	total     float64
	status    Status
	notes     string
}

// New builds an invoice for a booking at the given tax rate and computes its
// amounts immediately.
func New(id string, b *booking.Booking, issueDate time.Time, taxRate float64, status Status) *Invoice {
	inv := &Invoice{
		id:        id,
		booking:   b,
		issueDate: issueDate,
		taxRate:   taxRate,
		status:    status,
	}
	inv.recompute()
	return inv
}

// NewID produces a fresh invoice identifier, e.g. "INV-4c1d08b2".
func NewID() string {
	return "INV-" + uuid.NewString()[:8]
}

func (inv *Invoice) recompute() {
	if inv.booking == nil {
		inv.subtotal, inv.taxAmount, inv.total = 0, 0, 0
		return
	}
	inv.subtotal = inv.booking.TotalPrice()
	inv.taxAmount = inv.subtotal * inv.taxRate
	inv.total = inv.subtotal + inv.taxAmount
}

// ==================== Getters ====================

func (inv *Invoice) ID() string                { return inv.id }
func (inv *Invoice) Booking() *booking.Booking { return inv.booking }
func (inv *Invoice) IssueDate() time.Time      { return inv.issueDate }
func (inv *Invoice) TaxRate() float64          { return inv.taxRate }
func (inv *Invoice) Subtotal() float64         { return inv.subtotal }
func (inv *Invoice) TaxAmount() float64        { return inv.taxAmount }
func (inv *Invoice) Total() float64            { return inv.total }
func (inv *Invoice) Status() Status            { return inv.status }
func (inv *Invoice) Notes() string             { return inv.notes }

// Customer is the billed guest, taken from the booking. Nil when the invoice
// has no booking.
func (inv *Invoice) Customer() *customer.Customer {
	if inv.booking == nil {
		return nil
	}
	return inv.booking.Customer()
}

// ==================== Setters ====================

func (inv *Invoice) SetID(id string) {
	inv.id = id
}

func (inv *Invoice) SetBooking(b *booking.Booking) {
	inv.booking = b
	inv.recompute()
}

func (inv *Invoice) SetIssueDate(date time.Time) {
	inv.issueDate = date
}

func (inv *Invoice) SetTaxRate(rate float64) {
	inv.taxRate = rate
	inv.recompute()
}

func (inv *Invoice) SetStatus(status Status) {
	inv.status = status
}

func (inv *Invoice) SetNotes(notes string) {
	inv.notes = notes
}

// ==================== Status operations ====================

func (inv *Invoice) MarkIssued() { inv.status = StatusIssued }
func (inv *Invoice) MarkPaid()   { inv.status = StatusPaid }
func (inv *Invoice) Cancel()     { inv.status = StatusCancelled }

func (inv *Invoice) IsPaid() bool {
	return inv.status == StatusPaid
}

func (inv *Invoice) String() string {
	bookingID := ""
	if inv.booking != nil {
		bookingID = inv.booking.ID()
	}
	return fmt.Sprintf("Invoice{id=%s, booking=%s, subtotal=%.0f, tax=%.0f, total=%.0f, status=%s}",
		inv.id, bookingID, inv.subtotal, inv.taxAmount, inv.total, inv.status)
}
