package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/invoice"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func fixture(t *testing.T) (*booking.Ledger, *invoice.Register) {
	t.Helper()
	rm, err := room.New(room.TypeStandard, "R101", 1)
	require.NoError(t, err)
	cust := customer.New("C001", "Alice Tran", "alice@example.com", "0900", "ID", "",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false)

	ledger := booking.NewLedger()
	b := booking.New("BK001", cust, rm,
		time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		booking.StatusCheckedOut)
	require.True(t, ledger.Add(b))

	register := invoice.NewRegister()
	require.True(t, register.Add(invoice.New("INV001", b,
		time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC), 0.10, invoice.StatusPaid)))

	return ledger, register
}

func TestSnapshotBookings(t *testing.T) {
	a := openTestArchive(t)
	ledger, _ := fixture(t)

	n, err := a.SnapshotBookings(ledger)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := a.SnapshotCount("booking_snapshots")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// a second run appends, history is never overwritten
	_, err = a.SnapshotBookings(ledger)
	require.NoError(t, err)
	count, err = a.SnapshotCount("booking_snapshots")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSnapshotInvoices(t *testing.T) {
	a := openTestArchive(t)
	_, register := fixture(t)

	n, err := a.SnapshotInvoices(register)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := a.SnapshotCount("invoice_snapshots")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSnapshotCountRejectsUnknownTable(t *testing.T) {
	a := openTestArchive(t)
	_, err := a.SnapshotCount("users; DROP TABLE booking_snapshots")
	assert.Error(t, err)
}
