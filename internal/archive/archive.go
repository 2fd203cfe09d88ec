// internal/archive/archive.go
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/invoice"
	"github.com/IvanLyVodka11/hotel-management/internal/logger"
)

const queryTimeout = time.Second * 30

// Archive writes point-in-time snapshots of bookings and invoices into a
// sqlite database, one row per entity per snapshot run. The JSON files under
// the data dir stay the system of record; the archive is the audit trail.
type Archive struct {
	db *sql.DB
}

// Open connects to (or creates) the archive database and ensures the schema.
func Open(dataSourceName string) (*Archive, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping archive database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.enablePragmas(); err != nil {
		logger.LogWarn("Failed to enable some archive database optimizations: %v", err)
	}
	if err := a.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	logger.LogInfo("Archive database ready at %s", dataSourceName)
	return a, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) enablePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	var lastErr error
	for _, pragma := range pragmas {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		_, err := a.db.ExecContext(ctx, pragma)
		cancel()
		if err != nil {
			logger.LogWarn("Failed to execute %s: %v", pragma, err)
			lastErr = err
		}
	}
	return lastErr
}

const bookingSnapshotSchema = `
	CREATE TABLE IF NOT EXISTS booking_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		booking_id TEXT NOT NULL,
		payload_json TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	)`

const invoiceSnapshotSchema = `
	CREATE TABLE IF NOT EXISTS invoice_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_id TEXT NOT NULL,
		payload_json TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	)`

func (a *Archive) ensureSchema() error {
	for _, schema := range []string{bookingSnapshotSchema, invoiceSnapshotSchema} {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		_, err := a.db.ExecContext(ctx, schema)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to create archive schema: %w", err)
		}
	}
	return nil
}

// bookingSnapshot is the archived shape of a booking. References flatten to
// ids; the payload is self-contained.
type bookingSnapshot struct {
	BookingID    string  `json:"booking_id"`
	CustomerID   string  `json:"customer_id"`
	RoomID       string  `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
}

type invoiceSnapshot struct {
	InvoiceID   string  `json:"invoice_id"`
	BookingID   string  `json:"booking_id"`
	InvoiceDate string  `json:"invoice_date"`
	Subtotal    float64 `json:"subtotal"`
	TaxRate     float64 `json:"tax_rate"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

// SnapshotBookings archives the current state of every booking in the ledger.
// Returns the number of rows written.
func (a *Archive) SnapshotBookings(ledger *booking.Ledger) (int, error) {
	now := time.Now().Format(time.RFC3339)
	count := 0
	for _, b := range ledger.GetAll() {
		snap := bookingSnapshot{
			BookingID:    b.ID(),
			CheckInDate:  b.CheckInDate().Format("2006-01-02"),
			CheckOutDate: b.CheckOutDate().Format("2006-01-02"),
			Status:       string(b.Status()),
			TotalPrice:   b.TotalPrice(),
		}
		if b.Customer() != nil {
			snap.CustomerID = b.Customer().ID
		}
		if b.Room() != nil {
			snap.RoomID = b.Room().ID()
		}
		payload, err := json.Marshal(snap)
		if err != nil {
			return count, fmt.Errorf("failed to marshal booking %s snapshot: %w", b.ID(), err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		_, err = a.db.ExecContext(ctx,
			"INSERT INTO booking_snapshots (booking_id, payload_json, recorded_at) VALUES (?, ?, ?)",
			b.ID(), string(payload), now)
		cancel()
		if err != nil {
			return count, fmt.Errorf("failed to archive booking %s: %w", b.ID(), err)
		}
		count++
	}
	logger.LogInfo("Archived %d booking snapshots", count)
	return count, nil
}

// SnapshotInvoices archives the current state of every invoice.
func (a *Archive) SnapshotInvoices(register *invoice.Register) (int, error) {
	now := time.Now().Format(time.RFC3339)
	count := 0
	for _, inv := range register.GetAll() {
		snap := invoiceSnapshot{
			InvoiceID:   inv.ID(),
			InvoiceDate: inv.IssueDate().Format("2006-01-02"),
			Subtotal:    inv.Subtotal(),
			TaxRate:     inv.TaxRate(),
			TaxAmount:   inv.TaxAmount(),
			TotalAmount: inv.Total(),
			Status:      string(inv.Status()),
		}
		if inv.Booking() != nil {
			snap.BookingID = inv.Booking().ID()
		}
		payload, err := json.Marshal(snap)
		if err != nil {
			return count, fmt.Errorf("failed to marshal invoice %s snapshot: %w", inv.ID(), err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		_, err = a.db.ExecContext(ctx,
			"INSERT INTO invoice_snapshots (invoice_id, payload_json, recorded_at) VALUES (?, ?, ?)",
			inv.ID(), string(payload), now)
		cancel()
		if err != nil {
			return count, fmt.Errorf("failed to archive invoice %s: %w", inv.ID(), err)
		}
		count++
	}
	logger.LogInfo("Archived %d invoice snapshots", count)
	return count, nil
}

// SnapshotCount reports how many rows a snapshot table holds. Table name must
// be one of the two known tables.
func (a *Archive) SnapshotCount(table string) (int, error) {
	if table != "booking_snapshots" && table != "invoice_snapshots" {
		return 0, fmt.Errorf("unknown snapshot table %q", table)
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
