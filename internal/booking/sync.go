// internal/booking/sync.go
package booking

import (
	"github.com/IvanLyVodka11/hotel-management/internal/logger"
	"github.com/IvanLyVodka11/hotel-management/internal/room"
)

// SyncRoomStatus projects a booking's status onto its room's display status.
// Cancelled and checked-out bookings free the room, an in-house stay marks it
// occupied, everything else marks it reserved. Returns false when the booking
// has no room or the room is not in the catalog.
func SyncRoomStatus(catalog *room.Catalog, b *Booking) bool {
	if catalog == nil || b == nil || b.Room() == nil {
		return false
	}
	rm := catalog.GetByID(b.Room().ID())
	if rm == nil {
		return false
	}

	switch b.Status() {
	case StatusCancelled, StatusCheckedOut:
		rm.MarkAvailable()
	case StatusCheckedIn:
		rm.Occupy()
	default:
		rm.SetStatus(room.StatusReserved)
	}
	return true
}

// SyncRoomStatusAfterDelete frees the deleted booking's room, but only when no
// remaining booking still holds it. A room with any booking outside cancelled
// or checked-out keeps its current display status.
func SyncRoomStatusAfterDelete(catalog *room.Catalog, ledger *Ledger, deleted *Booking) bool {
	if catalog == nil || ledger == nil || deleted == nil || deleted.Room() == nil {
		return false
	}
	rm := catalog.GetByID(deleted.Room().ID())
	if rm == nil {
		return false
	}

	for _, b := range ledger.GetAll() {
		if b.Room() == nil || b.Room().ID() != rm.ID() {
			continue
		}
		if b.Status() != StatusCancelled && b.Status() != StatusCheckedOut {
			return true
		}
	}
	rm.MarkAvailable()
	return true
}

// SyncAllRoomStatuses replays every booking through SyncRoomStatus. Called
// once after load so display statuses agree with the ledger.
func SyncAllRoomStatuses(catalog *room.Catalog, ledger *Ledger) {
	for _, b := range ledger.GetAll() {
		if !SyncRoomStatus(catalog, b) {
			logger.LogWarn("sync: booking %s references unknown room, skipped", b.ID())
		}
	}
}

// ==================== Synced mutations ====================

// AddWithSync stores the booking and immediately reflects it on the room.
func (l *Ledger) AddWithSync(catalog *room.Catalog, b *Booking) bool {
	if !l.Add(b) {
		return false
	}
	SyncRoomStatus(catalog, b)
	return true
}

func (l *Ledger) UpdateWithSync(catalog *room.Catalog, b *Booking) bool {
	if !l.Update(b) {
		return false
	}
	SyncRoomStatus(catalog, b)
	return true
}

// DeleteWithSync removes the booking, then frees the room if nothing else
// holds it.
func (l *Ledger) DeleteWithSync(catalog *room.Catalog, id string) bool {
	deleted := l.GetByID(id)
	if deleted == nil || !l.Delete(id) {
		return false
	}
	SyncRoomStatusAfterDelete(catalog, l, deleted)
	return true
}
