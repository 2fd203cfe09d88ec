// main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/archive"
	"github.com/IvanLyVodka11/hotel-management/internal/auth"
	"github.com/IvanLyVodka11/hotel-management/internal/booking"
	"github.com/IvanLyVodka11/hotel-management/internal/cleanup"
	"github.com/IvanLyVodka11/hotel-management/internal/config"
	"github.com/IvanLyVodka11/hotel-management/internal/customer"
	"github.com/IvanLyVodka11/hotel-management/internal/invoice"
	"github.com/IvanLyVodka11/hotel-management/internal/logger"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
	"github.com/IvanLyVodka11/hotel-management/internal/storage"
)

// App owns the long-lived state: one catalog, one registry, one ledger, one
// register, constructed here and passed down. Nothing in internal/ holds a
// global.
type App struct {
	catalog  *room.Catalog
	registry *customer.Registry
	ledger   *booking.Ledger
	register *invoice.Register
	store    *storage.Store
	archive  *archive.Archive
	session  *auth.Session
}

func init() {
	loc, err := time.LoadLocation(config.DefaultTimeZone)
	if err == nil {
		time.Local = loc
	}
}

func main() {
	skipLogin := flag.Bool("skip-login", false, "start without authenticating (development)")
	flag.Parse()

	// Step 1: Setup configuration first
	config.LoadEnv()

	// Step 2: Setup logging
	loggerConfig := config.LoggerConfig()
	if err := logger.SetupLogger(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Only NOW is logging safe to use!
	logger.LogInfo("Environment loaded. Logger ready.")
	config.LogCurrentEnvironment()

	// Step 3: Open the audit archive
	archiveDB, err := archive.Open(config.ArchiveDBPath())
	if err != nil {
		logger.LogFatal("Failed to open archive database: %v", err)
	}
	defer archiveDB.Close()

	// Step 4: Construct the engine state
	store, err := storage.NewStore(config.DataDirectory())
	if err != nil {
		logger.LogFatal("Failed to set up data directory: %v", err)
	}
	app := &App{
		catalog:  room.NewCatalog(),
		registry: customer.NewRegistry(),
		ledger:   booking.NewLedger(),
		register: invoice.NewRegister(),
		store:    store,
		archive:  archiveDB,
		session:  auth.NewSession(),
	}

	// Step 5: Authenticate the operator
	if !*skipLogin {
		app.login()
	} else {
		logger.LogWarn("Login skipped via -skip-login flag")
	}

	// Step 6: Load persisted state, oldest dependency first
	if err := app.store.LoadAll(app.catalog, app.registry, app.ledger, app.register); err != nil {
		logger.LogFatal("Failed to load persisted state: %v", err)
	}

	// Step 7: Re-derive room display statuses from the ledger
	booking.SyncAllRoomStatuses(app.catalog, app.ledger)

	// Step 8: Log the dashboard summary
	app.logSummary()

	// Step 9: Snapshot into the archive, flush, prune old backups
	if _, err := app.archive.SnapshotBookings(app.ledger); err != nil {
		logger.LogError("Booking snapshot failed: %v", err)
	}
	if _, err := app.archive.SnapshotInvoices(app.register); err != nil {
		logger.LogError("Invoice snapshot failed: %v", err)
	}
	if err := app.store.SaveAll(app.catalog, app.registry, app.ledger, app.register); err != nil {
		logger.LogFatal("Failed to flush state: %v", err)
	}
	if _, err := cleanup.PruneBackups(app.store.BackupDir(), config.BackupRetentionDays()); err != nil {
		logger.LogError("Backup pruning failed: %v", err)
	}

	logger.LogInfo("Shutdown complete")
}

// login authenticates against users.json, falling back to the demo admin
// when no usable accounts exist. The credential prompt itself belongs to the
// UI collaborator; here the demo admin signs in directly.
func (a *App) login() {
	store := auth.LoadCredentialStore(config.UsersFilePath())
	user, err := store.Authenticate("admin", "admin123")
	if err != nil {
		logger.LogWarn("Default admin login failed: %v", err)
		return
	}
	a.session.Login(user.Username, user.Username, user.DisplayName, auth.ParseRole(user.Role))
	logger.LogInfo("Signed in as %s (%s)", a.session.DisplayName(), a.session.Role().DisplayName())
}

func (a *App) logSummary() {
	logger.LogInfo("Rooms: %d (%d available)", a.catalog.Count(), len(a.catalog.FindAvailable()))
	logger.LogInfo("Customers: %d (%d VIP)", a.registry.Count(), a.registry.VIPCount())
	logger.LogInfo("Bookings: %d (%d completed), revenue %.0f", a.ledger.TotalBookings(), a.ledger.CompletedBookings(), a.ledger.TotalRevenue())
	logger.LogInfo("Invoices: %d paid / %d unpaid, collected %.0f (tax %.0f), outstanding %.0f",
		a.register.PaidCount(), a.register.UnpaidCount(),
		a.register.TotalRevenue(), a.register.TotalTax(), a.register.UnpaidRevenue())
}
