// internal/booking/booking.go
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

// Status of a reservation.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

var statusNames = map[Status]string{
	StatusPending:    "Pending Confirmation",
	StatusConfirmed:  "Confirmed",
	StatusCheckedIn:  "Checked In",
	StatusCheckedOut: "Checked Out",
	StatusCancelled:  "Cancelled",
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

// Statuses lists all booking statuses.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
}

// Booking binds a customer to a room for a date range. The total price is
// derived from the room's pricing and recomputed whenever the customer, the
// room or either date changes.
type Booking struct {
	id           string
	customer     *customer.Customer
	room         *room.Room
	checkInDate  time.Time
	checkOutDate time.Time
	status       Status
	totalPrice   float64
	notes        string
}

// New builds a booking and computes its total price immediately. No
// validation happens here; the ledger's Add refuses invalid bookings.
func New(id string, cust *customer.Customer, rm *room.Room, checkIn, checkOut time.Time, status Status) *Booking {
	b := &Booking{
		id:           id,
		customer:     cust,
		room:         rm,
		checkInDate:  civil(checkIn),
		checkOutDate: civil(checkOut),
		status:       status,
	}
	b.totalPrice = b.calculateTotalPrice()
	return b
}

// NewID produces a fresh booking identifier for callers that do not supply
// their own, e.g. "BK-9f2c51a3".
func NewID() string {
	return "BK-" + uuid.NewString()[:8]
}

// civil truncates a timestamp to a UTC calendar date. The engine works in
// whole days.
func civil(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (b *Booking) calculateTotalPrice() float64 {
	if b.checkInDate.IsZero() || b.checkOutDate.IsZero() || b.room == nil {
		return 0
	}
	nights := int(b.checkOutDate.Sub(b.checkInDate).Hours() / 24)
	if nights <= 0 {
		nights = 1
	}
	price, err := b.room.CalculatePrice(nights)
	if err != nil {
		return 0
	}
	return price
}

// Nights is the billed night count: the day difference, with a one-night
// floor. Zero when either date is missing.
func (b *Booking) Nights() int {
	if b.checkInDate.IsZero() || b.checkOutDate.IsZero() {
		return 0
	}
	nights := int(b.checkOutDate.Sub(b.checkInDate).Hours() / 24)
	if nights <= 0 {
		return 1
	}
	return nights
}

// IsValid checks the booking invariant: a customer with an id, a room, both
// dates, and check-out strictly after check-in.
func (b *Booking) IsValid() bool {
	return b.customer != nil && b.customer.ID != "" &&
		b.room != nil &&
		!b.checkInDate.IsZero() && !b.checkOutDate.IsZero() &&
		b.checkOutDate.After(b.checkInDate)
}

// ==================== Getters ====================

func (b *Booking) ID() string                   { return b.id }
func (b *Booking) Customer() *customer.Customer { return b.customer }
func (b *Booking) Room() *room.Room             { return b.room }
func (b *Booking) CheckInDate() time.Time       { return b.checkInDate }
func (b *Booking) CheckOutDate() time.Time      { return b.checkOutDate }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) TotalPrice() float64          { return b.totalPrice }
func (b *Booking) Notes() string                { return b.notes }

// ==================== Setters ====================

func (b *Booking) SetID(id string) {
	b.id = id
}

func (b *Booking) SetCustomer(cust *customer.Customer) {
	b.customer = cust
	b.totalPrice = b.calculateTotalPrice()
}

func (b *Booking) SetRoom(rm *room.Room) {
	b.room = rm
	b.totalPrice = b.calculateTotalPrice()
}

func (b *Booking) SetCheckInDate(date time.Time) {
	b.checkInDate = civil(date)
	b.totalPrice = b.calculateTotalPrice()
}

func (b *Booking) SetCheckOutDate(date time.Time) {
	b.checkOutDate = civil(date)
	b.totalPrice = b.calculateTotalPrice()
}

func (b *Booking) SetStatus(status Status) {
	b.status = status
}

func (b *Booking) SetNotes(notes string) {
	b.notes = notes
}

func (b *Booking) String() string {
	roomID := ""
	if b.room != nil {
		roomID = b.room.ID()
	}
	custName := ""
	if b.customer != nil {
		custName = b.customer.FullName
	}
	return fmt.Sprintf("Booking{id=%s, customer=%s, room=%s, in=%s, out=%s, status=%s, total=%.0f}",
		b.id, custName, roomID,
		b.checkInDate.Format("2006-01-02"), b.checkOutDate.Format("2006-01-02"),
		b.status, b.totalPrice)
}
