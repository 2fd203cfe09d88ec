package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCustomer(id, name string) *customer.Customer {
	return customer.New(id, name, name+"@example.com", "0900123456", "ID"+id, "", date(2025, 1, 1), false)
}

func testRoom(t *testing.T, typ room.Type, id string) *room.Room {
	t.Helper()
	r, err := room.New(typ, id, 1)
	require.NoError(t, err)
	return r
}

func TestBookingTotalPrice(t *testing.T) {
	rm := testRoom(t, room.TypeStandard, "R101")
	b := New("BK001", testCustomer("C001", "Alice"), rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)

	assert.Equal(t, 3, b.Nights())
	assert.Equal(t, 1500000.0, b.TotalPrice())
}

func TestBookingPriceUsesVariantMultiplier(t *testing.T) {
	vip := testRoom(t, room.TypeVIP, "R201")
	b := New("BK001", testCustomer("C001", "Alice"), vip, date(2025, 12, 20), date(2025, 12, 22), StatusConfirmed)
	assert.Equal(t, 2400000.0, b.TotalPrice())

	deluxe := testRoom(t, room.TypeDeluxe, "R301")
	b = New("BK002", testCustomer("C001", "Alice"), deluxe, date(2025, 12, 20), date(2025, 12, 21), StatusConfirmed)
	assert.Equal(t, 2250000.0, b.TotalPrice())
}

func TestBookingSameDayHasOneNightFloor(t *testing.T) {
	rm := testRoom(t, room.TypeStandard, "R101")
	b := New("BK001", testCustomer("C001", "Alice"), rm, date(2025, 12, 20), date(2025, 12, 20), StatusConfirmed)

	assert.Equal(t, 1, b.Nights())
	assert.Equal(t, 500000.0, b.TotalPrice())
}

func TestBookingPriceRecomputesOnChange(t *testing.T) {
	std := testRoom(t, room.TypeStandard, "R101")
	b := New("BK001", testCustomer("C001", "Alice"), std, date(2025, 12, 20), date(2025, 12, 22), StatusConfirmed)
	require.Equal(t, 1000000.0, b.TotalPrice())

	b.SetCheckOutDate(date(2025, 12, 24))
	assert.Equal(t, 2000000.0, b.TotalPrice())

	b.SetRoom(testRoom(t, room.TypeVIP, "R201"))
	assert.Equal(t, 4800000.0, b.TotalPrice())

	b.SetCheckInDate(date(2025, 12, 23))
	assert.Equal(t, 1200000.0, b.TotalPrice())
}

func TestBookingZeroPriceWithoutRoomOrDates(t *testing.T) {
	b := New("BK001", testCustomer("C001", "Alice"), nil, date(2025, 12, 20), date(2025, 12, 22), StatusPending)
	assert.Equal(t, 0.0, b.TotalPrice())

	rm := testRoom(t, room.TypeStandard, "R101")
	b = New("BK002", testCustomer("C001", "Alice"), rm, time.Time{}, date(2025, 12, 22), StatusPending)
	assert.Equal(t, 0.0, b.TotalPrice())
	assert.Equal(t, 0, b.Nights())
}

func TestBookingIsValid(t *testing.T) {
	rm := testRoom(t, room.TypeStandard, "R101")
	cust := testCustomer("C001", "Alice")

	valid := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 22), StatusPending)
	assert.True(t, valid.IsValid())

	assert.False(t, New("BK002", nil, rm, date(2025, 12, 20), date(2025, 12, 22), StatusPending).IsValid())
	assert.False(t, New("BK003", &customer.Customer{}, rm, date(2025, 12, 20), date(2025, 12, 22), StatusPending).IsValid())
	assert.False(t, New("BK004", cust, nil, date(2025, 12, 20), date(2025, 12, 22), StatusPending).IsValid())
	assert.False(t, New("BK005", cust, rm, time.Time{}, date(2025, 12, 22), StatusPending).IsValid())
	// same-day stay bills one night but is not a valid range
	assert.False(t, New("BK006", cust, rm, date(2025, 12, 20), date(2025, 12, 20), StatusPending).IsValid())
	assert.False(t, New("BK007", cust, rm, date(2025, 12, 22), date(2025, 12, 20), StatusPending).IsValid())
}

func TestBookingDatesTruncateToCivilDays(t *testing.T) {
	rm := testRoom(t, room.TypeStandard, "R101")
	in := time.Date(2025, 12, 20, 15, 30, 0, 0, time.UTC)
	out := time.Date(2025, 12, 22, 11, 0, 0, 0, time.UTC)

	b := New("BK001", testCustomer("C001", "Alice"), rm, in, out, StatusConfirmed)
	assert.Equal(t, date(2025, 12, 20), b.CheckInDate())
	assert.Equal(t, date(2025, 12, 22), b.CheckOutDate())
	assert.Equal(t, 2, b.Nights())
}

func TestStatusFromString(t *testing.T) {
	status, ok := StatusFromString("checked_in")
	assert.True(t, ok)
	assert.Equal(t, StatusCheckedIn, status)

	status, ok = StatusFromString("Checked Out")
	assert.True(t, ok)
	assert.Equal(t, StatusCheckedOut, status)

	_, ok = StatusFromString("NO_SHOW")
	assert.False(t, ok)
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 11)
	assert.Equal(t, "BK-", id[:3])
	assert.NotEqual(t, id, NewID())
}
