// internal/storage/codec.go
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/invoice"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

// dateLayout is the on-disk date format for all calendar dates.
const dateLayout = "2006-01-02"

// roomJSON is the wire shape of a room. The variant tag comes first; the
// amenity booleans are pointers so an absent field can default to true and a
// non-applicable field can be omitted on write.
type roomJSON struct {
	RoomType    string   `json:"roomType"`
	RoomID      string   `json:"roomId"`
	Floor       int      `json:"floor"`
	BasePrice   float64  `json:"basePrice"`
	Status      string   `json:"status"`
	Description *string  `json:"description,omitempty"`
	BedCount    *int     `json:"bedCount,omitempty"`
	Area        *float64 `json:"area,omitempty"`

	HasView            *bool `json:"hasView,omitempty"`
	HasPrivateBathroom *bool `json:"hasPrivateBathroom,omitempty"`
	HasJacuzzi         *bool `json:"hasJacuzzi,omitempty"`
	HasMinibar         *bool `json:"hasMinibar,omitempty"`
	HasLivingRoom      *bool `json:"hasLivingRoom,omitempty"`
}

type customerJSON struct {
	CustomerID       string  `json:"customerId"`
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	PhoneNumber      string  `json:"phoneNumber"`
	IDCard           string  `json:"idCard"`
	Address          string  `json:"address"`
	RegistrationDate string  `json:"registrationDate"`
	IsVIP            bool    `json:"isVIP"`
	LoyaltyPoints    float64 `json:"loyaltyPoints"`
}

type bookingJSON struct {
	BookingID    string  `json:"bookingId"`
	CustomerID   string  `json:"customerId"`
	RoomID       string  `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
	Notes        string  `json:"notes"`
}

type invoiceJSON struct {
	InvoiceID   string  `json:"invoiceId"`
	BookingID   string  `json:"bookingId"`
	InvoiceDate string  `json:"invoiceDate"`
	Subtotal    float64 `json:"subtotal"`
	TaxRate     float64 `json:"taxRate"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

// ==================== Rooms ====================

func encodeRoom(r *room.Room) roomJSON {
	desc := r.Description()
	beds := r.BedCount()
	area := r.Area()
	out := roomJSON{
		RoomType:    string(r.Type()),
		RoomID:      r.ID(),
		Floor:       r.Floor(),
		BasePrice:   r.BasePrice(),
		Status:      string(r.Status()),
		Description: &desc,
		BedCount:    &beds,
		Area:        &area,
	}
	a := r.Amenities()
	switch r.Type() {
	case room.TypeVIP:
		out.HasView = &a.View
		out.HasPrivateBathroom = &a.PrivateBathroom
	case room.TypeDeluxe:
		out.HasView = &a.View
		out.HasPrivateBathroom = &a.PrivateBathroom
		out.HasJacuzzi = &a.Jacuzzi
		out.HasMinibar = &a.Minibar
		out.HasLivingRoom = &a.LivingRoom
	}
	return out
}

// decodeRoom rebuilds a room from its wire shape. The variant tag decides
// which fields apply; absent optionals fall back to description="",
// bedCount=1, area=20.0, amenity booleans=true.
func decodeRoom(data roomJSON) (*room.Room, error) {
	typ, ok := room.TypeFromString(data.RoomType)
	if !ok {
		return nil, fmt.Errorf("unknown room type %q", data.RoomType)
	}
	status, ok := room.StatusFromString(data.Status)
	if !ok {
		return nil, fmt.Errorf("unknown room status %q", data.Status)
	}

	description := stringOr(data.Description, "")
	bedCount := intOr(data.BedCount, 1)
	area := floatOr(data.Area, 20.0)

	r, err := room.NewFull(typ, data.RoomID, data.Floor, data.BasePrice, description, bedCount, area)
	if err != nil {
		return nil, err
	}

	a := r.Amenities()
	switch typ {
	case room.TypeVIP:
		a.View = boolOr(data.HasView, true)
		a.PrivateBathroom = boolOr(data.HasPrivateBathroom, true)
	case room.TypeDeluxe:
		a.View = boolOr(data.HasView, true)
		a.PrivateBathroom = boolOr(data.HasPrivateBathroom, true)
		a.Jacuzzi = boolOr(data.HasJacuzzi, true)
		a.Minibar = boolOr(data.HasMinibar, true)
		a.LivingRoom = boolOr(data.HasLivingRoom, true)
	}
	r.SetAmenities(a)

	if err := r.SetStatus(status); err != nil {
		return nil, err
	}
	return r, nil
}

// ==================== Customers ====================

func encodeCustomer(c *customer.Customer) customerJSON {
	return customerJSON{
		CustomerID:       c.ID,
		FullName:         c.FullName,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		IDCard:           c.IDCard,
		Address:          c.Address,
		RegistrationDate: c.RegistrationDate.Format(dateLayout),
		IsVIP:            c.VIP,
		LoyaltyPoints:    c.LoyaltyPoints,
	}
}

func decodeCustomer(data customerJSON) (*customer.Customer, error) {
	if data.CustomerID == "" {
		return nil, fmt.Errorf("customer without id")
	}
	registered, err := time.Parse(dateLayout, data.RegistrationDate)
	if err != nil {
		return nil, fmt.Errorf("customer %s: bad registration date %q: %w", data.CustomerID, data.RegistrationDate, err)
	}
	c := customer.New(data.CustomerID, data.FullName, data.Email, data.PhoneNumber,
		data.IDCard, data.Address, registered, data.IsVIP)
	c.LoyaltyPoints = data.LoyaltyPoints
	return c, nil
}

// ==================== Bookings ====================

func encodeBooking(b *booking.Booking) bookingJSON {
	return bookingJSON{
		BookingID:    b.ID(),
		CustomerID:   b.Customer().ID,
		RoomID:       b.Room().ID(),
		CheckInDate:  b.CheckInDate().Format(dateLayout),
		CheckOutDate: b.CheckOutDate().Format(dateLayout),
		Status:       string(b.Status()),
		TotalPrice:   b.TotalPrice(),
		Notes:        b.Notes(),
	}
}

// decodeBooking resolves the customer and room against the already loaded
// stores. The stored totalPrice is ignored; the price is recomputed from the
// resolved room. Returns (nil, nil) when a reference does not resolve so the
// caller can warn and skip.
func decodeBooking(data bookingJSON, registry *customer.Registry, catalog *room.Catalog) (*booking.Booking, error) {
	status, ok := booking.StatusFromString(data.Status)
	if !ok {
		return nil, fmt.Errorf("booking %s: unknown status %q", data.BookingID, data.Status)
	}
	checkIn, err := time.Parse(dateLayout, data.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: bad check-in date %q: %w", data.BookingID, data.CheckInDate, err)
	}
	checkOut, err := time.Parse(dateLayout, data.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: bad check-out date %q: %w", data.BookingID, data.CheckOutDate, err)
	}

	cust := registry.GetByID(data.CustomerID)
	rm := catalog.GetByID(data.RoomID)
	if cust == nil || rm == nil {
		return nil, nil
	}

	b := booking.New(data.BookingID, cust, rm, checkIn, checkOut, status)
	b.SetNotes(data.Notes)
	return b, nil
}

// ==================== Invoices ====================

func encodeInvoice(inv *invoice.Invoice) invoiceJSON {
	return invoiceJSON{
		InvoiceID:   inv.ID(),
		BookingID:   inv.Booking().ID(),
		InvoiceDate: inv.IssueDate().Format(dateLayout),
		Subtotal:    inv.Subtotal(),
		TaxRate:     inv.TaxRate(),
		TaxAmount:   inv.TaxAmount(),
		TotalAmount: inv.Total(),
		Status:      string(inv.Status()),
		Notes:       inv.Notes(),
	}
}

// decodeInvoice resolves the booking against the loaded ledger and recomputes
// the amounts from it. Returns (nil, nil) when the booking does not resolve.
func decodeInvoice(data invoiceJSON, ledger *booking.Ledger) (*invoice.Invoice, error) {
	issueDate, err := time.Parse(dateLayout, data.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: bad invoice date %q: %w", data.InvoiceID, data.InvoiceDate, err)
	}
	status := invoice.StatusDraft
	if data.Status != "" {
		parsed, ok := invoice.StatusFromString(data.Status)
		if !ok {
			return nil, fmt.Errorf("invoice %s: unknown status %q", data.InvoiceID, data.Status)
		}
		status = parsed
	}

	b := ledger.GetByID(data.BookingID)
	if b == nil {
		return nil, nil
	}

	inv := invoice.New(data.InvoiceID, b, issueDate, data.TaxRate, status)
	inv.SetNotes(data.Notes)
	return inv, nil
}

// ==================== Helpers ====================

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func marshalPretty(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
