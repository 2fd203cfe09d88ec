package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBooking(t *testing.T, id string) *booking.Booking {
	t.Helper()
	rm, err := room.New(room.TypeStandard, "R101", 1)
	require.NoError(t, err)
	cust := customer.New("C001", "Alice Tran", "alice@example.com", "0900123456", "IDC001", "", date(2025, 1, 1), false)
	return booking.New(id, cust, rm, date(2025, 12, 20), date(2025, 12, 23), booking.StatusCheckedOut)
}

func TestInvoiceAmounts(t *testing.T) {
	b := testBooking(t, "BK001")
	require.Equal(t, 1500000.0, b.TotalPrice())

	inv := New("INV001", b, date(2025, 12, 23), 0.10, StatusDraft)
	assert.Equal(t, 1500000.0, inv.Subtotal())
	assert.Equal(t, 150000.0, inv.TaxAmount())
	assert.Equal(t, 1650000.0, inv.Total())
}

func TestInvoiceRecomputesOnTaxRateChange(t *testing.T) {
	inv := New("INV001", testBooking(t, "BK001"), date(2025, 12, 23), 0.10, StatusDraft)

	inv.SetTaxRate(0.08)
	assert.Equal(t, 120000.0, inv.TaxAmount())
	assert.Equal(t, 1620000.0, inv.Total())
}

func TestInvoiceRecomputesOnBookingChange(t *testing.T) {
	inv := New("INV001", testBooking(t, "BK001"), date(2025, 12, 23), 0.10, StatusDraft)

	rm, err := room.New(room.TypeVIP, "R201", 2)
	require.NoError(t, err)
	cust := customer.New("C002", "Bob", "bob@example.com", "0900", "ID", "", date(2025, 1, 1), false)
	longer := booking.New("BK002", cust, rm, date(2025, 12, 20), date(2025, 12, 22), booking.StatusCheckedOut)

	inv.SetBooking(longer)
	assert.Equal(t, 2400000.0, inv.Subtotal())
	assert.Equal(t, 2640000.0, inv.Total())
	assert.Equal(t, "C002", inv.Customer().ID)

	inv.SetBooking(nil)
	assert.Equal(t, 0.0, inv.Total())
	assert.Nil(t, inv.Customer())
}

func TestInvoiceTransitionsAreUnguarded(t *testing.T) {
	inv := New("INV001", testBooking(t, "BK001"), date(2025, 12, 23), 0.10, StatusDraft)

	inv.MarkPaid()
	assert.True(t, inv.IsPaid())

	// back to draft after payment is allowed for corrections
	inv.SetStatus(StatusDraft)
	assert.Equal(t, StatusDraft, inv.Status())

	inv.Cancel()
	assert.Equal(t, StatusCancelled, inv.Status())
	inv.MarkIssued()
	assert.Equal(t, StatusIssued, inv.Status())
}

func TestInvoiceStatusFromString(t *testing.T) {
	status, ok := StatusFromString("paid")
	assert.True(t, ok)
	assert.Equal(t, StatusPaid, status)

	status, ok = StatusFromString("Draft")
	assert.True(t, ok)
	assert.Equal(t, StatusDraft, status)

	_, ok = StatusFromString("VOID")
	assert.False(t, ok)
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 12)
	assert.Equal(t, "INV-", id[:4])
	assert.NotEqual(t, id, NewID())
}
