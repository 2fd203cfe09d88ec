// internal/storage/store.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/invoice"
	"github.com/IvanLyVodka11/hotel-management/internal/logger"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

const (
	roomsFile     = "rooms.json"
	customersFile = "customers.json"
	bookingsFile  = "bookings.json"
	invoicesFile  = "invoices.json"
)

// Store flushes the in-memory state to JSON files under a data directory and
// loads it back on startup. It is the only component that touches these
// files.
type Store struct {
	dataDir string
}

// NewStore ensures the data directory exists.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0775); err != nil {
		return nil, fmt.Errorf("failed to create data directory '%s': %w", dataDir, err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// ==================== Load ====================

// LoadAll reads every file in dependency order: rooms and customers first,
// then bookings resolved against them, then invoices resolved against the
// bookings. Missing files are fine; a fresh install starts empty.
func (s *Store) LoadAll(catalog *room.Catalog, registry *customer.Registry, ledger *booking.Ledger, register *invoice.Register) error {
	if err := s.LoadRooms(catalog); err != nil {
		return err
	}
	if err := s.LoadCustomers(registry); err != nil {
		return err
	}
	if err := s.LoadBookings(ledger, registry, catalog); err != nil {
		return err
	}
	return s.LoadInvoices(register, ledger)
}

func (s *Store) LoadRooms(catalog *room.Catalog) error {
	var records []roomJSON
	found, err := s.readFile(roomsFile, &records)
	if err != nil || !found {
		return err
	}
	rooms := make([]*room.Room, 0, len(records))
	for _, record := range records {
		r, err := decodeRoom(record)
		if err != nil {
			logger.LogWarn("Skipping room %s: %v", record.RoomID, err)
			continue
		}
		rooms = append(rooms, r)
	}
	catalog.LoadRooms(rooms)
	logger.LogInfo("Loaded %d rooms from %s", len(rooms), s.path(roomsFile))
	return nil
}

func (s *Store) LoadCustomers(registry *customer.Registry) error {
	var records []customerJSON
	found, err := s.readFile(customersFile, &records)
	if err != nil || !found {
		return err
	}
	customers := make([]*customer.Customer, 0, len(records))
	for _, record := range records {
		c, err := decodeCustomer(record)
		if err != nil {
			logger.LogWarn("Skipping customer %s: %v", record.CustomerID, err)
			continue
		}
		customers = append(customers, c)
	}
	registry.LoadCustomers(customers)
	logger.LogInfo("Loaded %d customers from %s", len(customers), s.path(customersFile))
	return nil
}

func (s *Store) LoadBookings(ledger *booking.Ledger, registry *customer.Registry, catalog *room.Catalog) error {
	var records []bookingJSON
	found, err := s.readFile(bookingsFile, &records)
	if err != nil || !found {
		return err
	}
	ledger.Clear()
	count := 0
	for _, record := range records {
		b, err := decodeBooking(record, registry, catalog)
		if err != nil {
			logger.LogWarn("Skipping booking %s: %v", record.BookingID, err)
			continue
		}
		if b == nil {
			logger.LogWarn("Booking %s references missing customer %s or room %s, skipped",
				record.BookingID, record.CustomerID, record.RoomID)
			continue
		}
		if ledger.Add(b) {
			count++
		}
	}
	logger.LogInfo("Loaded %d bookings from %s", count, s.path(bookingsFile))
	return nil
}

func (s *Store) LoadInvoices(register *invoice.Register, ledger *booking.Ledger) error {
	var records []invoiceJSON
	found, err := s.readFile(invoicesFile, &records)
	if err != nil || !found {
		return err
	}
	register.Clear()
	count := 0
	for _, record := range records {
		inv, err := decodeInvoice(record, ledger)
		if err != nil {
			logger.LogWarn("Skipping invoice %s: %v", record.InvoiceID, err)
			continue
		}
		if inv == nil {
			logger.LogWarn("Invoice %s references missing booking %s, skipped", record.InvoiceID, record.BookingID)
			continue
		}
		if register.Add(inv) {
			count++
		}
	}
	logger.LogInfo("Loaded %d invoices from %s", count, s.path(invoicesFile))
	return nil
}

// readFile unmarshals a data file into out. The found result is false when
// the file does not exist or is empty.
func (s *Store) readFile(name string, out interface{}) (bool, error) {
	path := s.path(name)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.LogInfo("Data file %s does not exist yet", path)
			return false, nil
		}
		return false, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	if len(content) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	return true, nil
}

// ==================== Save ====================

// SaveAll flushes all four collections. A failing file aborts the flush so
// the error is not silently swallowed.
func (s *Store) SaveAll(catalog *room.Catalog, registry *customer.Registry, ledger *booking.Ledger, register *invoice.Register) error {
	if err := s.SaveRooms(catalog); err != nil {
		return err
	}
	if err := s.SaveCustomers(registry); err != nil {
		return err
	}
	if err := s.SaveBookings(ledger); err != nil {
		return err
	}
	return s.SaveInvoices(register)
}

func (s *Store) SaveRooms(catalog *room.Catalog) error {
	rooms := catalog.SortByID()
	records := make([]roomJSON, 0, len(rooms))
	for _, r := range rooms {
		records = append(records, encodeRoom(r))
	}
	return s.writeFile(roomsFile, records, len(records), "rooms")
}

func (s *Store) SaveCustomers(registry *customer.Registry) error {
	customers := registry.GetAll()
	records := make([]customerJSON, 0, len(customers))
	for _, c := range customers {
		records = append(records, encodeCustomer(c))
	}
	return s.writeFile(customersFile, records, len(records), "customers")
}

func (s *Store) SaveBookings(ledger *booking.Ledger) error {
	bookings := ledger.GetAll()
	records := make([]bookingJSON, 0, len(bookings))
	for _, b := range bookings {
		if b.Customer() == nil || b.Room() == nil {
			logger.LogWarn("Booking %s has no customer or room, not saved", b.ID())
			continue
		}
		records = append(records, encodeBooking(b))
	}
	return s.writeFile(bookingsFile, records, len(records), "bookings")
}

func (s *Store) SaveInvoices(register *invoice.Register) error {
	invoices := register.GetAll()
	records := make([]invoiceJSON, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Booking() == nil {
			logger.LogWarn("Invoice %s has no booking, not saved", inv.ID())
			continue
		}
		records = append(records, encodeInvoice(inv))
	}
	return s.writeFile(invoicesFile, records, len(records), "invoices")
}

func (s *Store) writeFile(name string, records interface{}, count int, what string) error {
	data, err := marshalPretty(records)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	path := s.path(name)
	if err := s.backupExisting(name); err != nil {
		logger.LogWarn("Backup of %s failed: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	logger.LogInfo("Saved %d %s to %s", count, what, path)
	return nil
}

// ==================== Backups ====================

// BackupDir is where pre-overwrite copies of the data files land.
func (s *Store) BackupDir() string {
	return filepath.Join(s.dataDir, "backups")
}

// backupExisting copies the current file into the backup directory before it
// gets overwritten, stamped "<name>.<yyyymmdd-hhmmss>.json".
func (s *Store) backupExisting(name string) error {
	src := s.path(name)
	content, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(s.BackupDir(), 0775); err != nil {
		return err
	}
	base := name[:len(name)-len(filepath.Ext(name))]
	stamp := time.Now().Format("20060102-150405")
	dst := filepath.Join(s.BackupDir(), fmt.Sprintf("%s.%s.json", base, stamp))
	return os.WriteFile(dst, content, 0664)
}
