package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

func syncFixture(t *testing.T) (*room.Catalog, *Ledger, *room.Room) {
	t.Helper()
	catalog := room.NewCatalog()
	rm := testRoom(t, room.TypeStandard, "R101")
	require.True(t, catalog.Add(rm))
	return catalog, NewLedger(), rm
}

func TestSyncRoomStatus(t *testing.T) {
	catalog, _, rm := syncFixture(t)
	cust := testCustomer("C001", "Alice")
	b := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)

	require.True(t, SyncRoomStatus(catalog, b))
	assert.Equal(t, room.StatusReserved, rm.Status())

	b.SetStatus(StatusCheckedIn)
	require.True(t, SyncRoomStatus(catalog, b))
	assert.Equal(t, room.StatusOccupied, rm.Status())

	b.SetStatus(StatusCheckedOut)
	require.True(t, SyncRoomStatus(catalog, b))
	assert.Equal(t, room.StatusAvailable, rm.Status())

	b.SetStatus(StatusCancelled)
	rm.Occupy()
	require.True(t, SyncRoomStatus(catalog, b))
	assert.Equal(t, room.StatusAvailable, rm.Status())

	b.SetStatus(StatusPending)
	require.True(t, SyncRoomStatus(catalog, b))
	assert.Equal(t, room.StatusReserved, rm.Status())
}

func TestSyncRoomStatusUnknownRoom(t *testing.T) {
	catalog, _, _ := syncFixture(t)
	stray := testRoom(t, room.TypeStandard, "R999")
	b := New("BK001", testCustomer("C001", "Alice"), stray, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)

	assert.False(t, SyncRoomStatus(catalog, b))
	assert.False(t, SyncRoomStatus(nil, b))
	assert.False(t, SyncRoomStatus(catalog, nil))
}

func TestSyncAfterDeleteFreesRoomWhenNoActiveBookingRemains(t *testing.T) {
	catalog, ledger, rm := syncFixture(t)
	cust := testCustomer("C001", "Alice")

	b := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)
	require.True(t, ledger.AddWithSync(catalog, b))
	require.Equal(t, room.StatusReserved, rm.Status())

	assert.True(t, ledger.DeleteWithSync(catalog, "BK001"))
	assert.Equal(t, room.StatusAvailable, rm.Status())
	assert.True(t, ledger.IsEmpty())
}

func TestSyncAfterDeleteKeepsStatusWhenAnotherBookingHoldsRoom(t *testing.T) {
	catalog, ledger, rm := syncFixture(t)
	cust := testCustomer("C001", "Alice")

	first := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)
	second := New("BK002", cust, rm, date(2026, 1, 5), date(2026, 1, 8), StatusCheckedIn)
	require.True(t, ledger.AddWithSync(catalog, first))
	require.True(t, ledger.AddWithSync(catalog, second))
	require.Equal(t, room.StatusOccupied, rm.Status())

	assert.True(t, ledger.DeleteWithSync(catalog, "BK001"))
	assert.Equal(t, room.StatusOccupied, rm.Status())
}

func TestSyncAfterDeleteIgnoresInactiveRemainders(t *testing.T) {
	catalog, ledger, rm := syncFixture(t)
	cust := testCustomer("C001", "Alice")

	first := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)
	stale := New("BK002", cust, rm, date(2025, 11, 1), date(2025, 11, 3), StatusCheckedOut)
	require.True(t, ledger.AddWithSync(catalog, first))
	require.True(t, ledger.Add(stale))
	rm.SetStatus(room.StatusReserved)

	assert.True(t, ledger.DeleteWithSync(catalog, "BK001"))
	assert.Equal(t, room.StatusAvailable, rm.Status())
}

func TestUpdateWithSync(t *testing.T) {
	catalog, ledger, rm := syncFixture(t)
	cust := testCustomer("C001", "Alice")
	b := New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)
	require.True(t, ledger.AddWithSync(catalog, b))

	b.SetStatus(StatusCheckedIn)
	assert.True(t, ledger.UpdateWithSync(catalog, b))
	assert.Equal(t, room.StatusOccupied, rm.Status())

	ghost := New("BK999", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)
	assert.False(t, ledger.UpdateWithSync(catalog, ghost))
}

func TestSyncAllRoomStatuses(t *testing.T) {
	catalog, ledger, rm := syncFixture(t)
	other := testRoom(t, room.TypeVIP, "R201")
	require.True(t, catalog.Add(other))
	cust := testCustomer("C001", "Alice")

	require.True(t, ledger.Add(New("BK001", cust, rm, date(2025, 12, 20), date(2025, 12, 23), StatusCheckedIn)))
	require.True(t, ledger.Add(New("BK002", cust, other, date(2025, 12, 20), date(2025, 12, 23), StatusConfirmed)))

	SyncAllRoomStatuses(catalog, ledger)
	assert.Equal(t, room.StatusOccupied, rm.Status())
	assert.Equal(t, room.StatusReserved, other.Status())
}
