// internal/room/room.go
package room

import (
	"fmt"
	"strings"
)

// Room is a single hotel room. Fields are kept private so every mutation
// passes validation; an invalid Room cannot be constructed.
type Room struct {
	id          string
	typ         Type
	floor       int
	status      Status
	basePrice   float64
	description string
	bedCount    int
	area        float64
	amenities   Amenities
}

// New creates a room of the given variant with the variant's default price,
// bed count, area and amenities.
func New(typ Type, id string, floor int) (*Room, error) {
	return NewWithPrice(typ, id, floor, typ.DefaultBasePrice())
}

// NewWithPrice creates a room with a custom base price.
func NewWithPrice(typ Type, id string, floor int, basePrice float64) (*Room, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrValidation, typ)
	}
	r := &Room{
		typ:         typ,
		status:      StatusAvailable,
		description: "",
		bedCount:    typ.DefaultBedCount(),
		area:        typ.DefaultArea(),
		amenities:   typ.DefaultAmenities(),
	}
	if err := r.SetID(id); err != nil {
		return nil, err
	}
	if err := r.SetFloor(floor); err != nil {
		return nil, err
	}
	if err := r.SetBasePrice(basePrice); err != nil {
		return nil, err
	}
	return r, nil
}

// NewFull creates a room with every common attribute supplied.
func NewFull(typ Type, id string, floor int, basePrice float64, description string, bedCount int, area float64) (*Room, error) {
	r, err := NewWithPrice(typ, id, floor, basePrice)
	if err != nil {
		return nil, err
	}
	r.SetDescription(description)
	if err := r.SetBedCount(bedCount); err != nil {
		return nil, err
	}
	if err := r.SetArea(area); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone copies a room under a new identifier.
func Clone(source *Room, newID string) (*Room, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source room is nil", ErrValidation)
	}
	r, err := NewWithPrice(source.typ, newID, source.floor, source.basePrice)
	if err != nil {
		return nil, err
	}
	r.SetDescription(source.description)
	if err := r.SetBedCount(source.bedCount); err != nil {
		return nil, err
	}
	if err := r.SetArea(source.area); err != nil {
		return nil, err
	}
	r.SetAmenities(source.amenities)
	if err := r.SetStatus(source.status); err != nil {
		return nil, err
	}
	return r, nil
}

// ==================== Getters ====================

func (r *Room) ID() string           { return r.id }
func (r *Room) Type() Type           { return r.typ }
func (r *Room) Floor() int           { return r.floor }
func (r *Room) Status() Status       { return r.status }
func (r *Room) BasePrice() float64   { return r.basePrice }
func (r *Room) Description() string  { return r.description }
func (r *Room) BedCount() int        { return r.bedCount }
func (r *Room) Area() float64        { return r.area }
func (r *Room) Amenities() Amenities { return r.amenities }

// ==================== Validated setters ====================

// SetID normalizes the identifier: trimmed and uppercased. The catalog uses
// it as the map key, so it must be non-empty.
func (r *Room) SetID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: room id must not be empty", ErrValidation)
	}
	r.id = strings.ToUpper(id)
	return nil
}

func (r *Room) SetFloor(floor int) error {
	if floor < 1 || floor > 100 {
		return fmt.Errorf("%w: floor must be between 1 and 100, got %d", ErrValidation, floor)
	}
	r.floor = floor
	return nil
}

func (r *Room) SetStatus(status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown room status %q", ErrValidation, status)
	}
	r.status = status
	return nil
}

func (r *Room) SetBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative, got %.2f", ErrValidation, basePrice)
	}
	r.basePrice = basePrice
	return nil
}

func (r *Room) SetDescription(description string) {
	r.description = description
}

func (r *Room) SetBedCount(bedCount int) error {
	if bedCount < 1 || bedCount > 10 {
		return fmt.Errorf("%w: bed count must be between 1 and 10, got %d", ErrValidation, bedCount)
	}
	r.bedCount = bedCount
	return nil
}

func (r *Room) SetArea(area float64) error {
	if area < 10 || area > 500 {
		return fmt.Errorf("%w: area must be between 10 and 500 m2, got %.1f", ErrValidation, area)
	}
	r.area = area
	return nil
}

// SetAmenities overrides the variant defaults, e.g. a VIP room without a
// view. Flags outside the variant's schema are ignored by serialization.
func (r *Room) SetAmenities(a Amenities) {
	r.amenities = a
}

// ==================== Pricing ====================

// CalculatePrice returns the total for a stay of the given number of nights:
// basePrice x nights x variant multiplier.
func (r *Room) CalculatePrice(nights int) (float64, error) {
	if nights < 1 {
		return 0, fmt.Errorf("%w: nights must be at least 1, got %d", ErrValidation, nights)
	}
	return r.basePrice * float64(nights) * r.typ.Multiplier(), nil
}

// ==================== Status operations ====================

// IsAvailable reports the display status only. Use the ledger's overlap
// check to decide whether a date range can actually be booked.
func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) Occupy() {
	r.status = StatusOccupied
}

// Release moves an occupied room to cleaning, not straight to available.
func (r *Room) Release() {
	r.status = StatusCleaning
}

func (r *Room) MarkAvailable() {
	r.status = StatusAvailable
}

func (r *Room) MarkMaintenance() {
	r.status = StatusMaintenance
}

// ==================== Occupancy ====================

func (r *Room) MaxOccupancy() int {
	return r.typ.MaxOccupancy()
}

func (r *Room) CanAccommodate(guestCount int) bool {
	return guestCount > 0 && guestCount <= r.typ.MaxOccupancy()
}

// ==================== Descriptions ====================

// TypeDescription is the long-form variant blurb shown in room detail views.
func (r *Room) TypeDescription() string {
	switch r.typ {
	case TypeVIP:
		var sb strings.Builder
		sb.WriteString("VIP Room - upscale comfort with premium fittings. ")
		if r.amenities.View {
			sb.WriteString("Scenic view. ")
		}
		if r.amenities.PrivateBathroom {
			sb.WriteString("Private bathroom. ")
		}
		fmt.Fprintf(&sb, "Sleeps up to %d guests.", r.MaxOccupancy())
		return sb.String()
	case TypeDeluxe:
		var sb strings.Builder
		sb.WriteString("Deluxe Room - five-star experience with generous space. Amenities: ")
		if r.amenities.View {
			sb.WriteString("scenic view, ")
		}
		if r.amenities.PrivateBathroom {
			sb.WriteString("private bathroom, ")
		}
		if r.amenities.Jacuzzi {
			sb.WriteString("jacuzzi, ")
		}
		if r.amenities.Minibar {
			sb.WriteString("minibar, ")
		}
		if r.amenities.LivingRoom {
			sb.WriteString("private living room, ")
		}
		fmt.Fprintf(&sb, "sleeps up to %d guests.", r.MaxOccupancy())
		return sb.String()
	default:
		return fmt.Sprintf("Standard Room - all the essentials for a short business or leisure stay. Sleeps up to %d guests.", r.MaxOccupancy())
	}
}

// ShortInfo is the one-line summary used in list views.
func (r *Room) ShortInfo() string {
	return fmt.Sprintf("%s - %s - %s", r.id, r.typ.DisplayName(), r.status.DisplayName())
}

func (r *Room) String() string {
	return fmt.Sprintf("Room{id=%s, type=%s, floor=%d, status=%s, price=%.0f}",
		r.id, r.typ, r.floor, r.status, r.basePrice)
}
