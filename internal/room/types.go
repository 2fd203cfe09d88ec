// internal/room/types.go
package room

import "strings"

// Type identifies the room variant. Pricing and default fittings hang off
// the variant table below instead of a class hierarchy.
type Type string

const (
	TypeStandard Type = "STANDARD"
	TypeVIP      Type = "VIP"
	TypeDeluxe   Type = "DELUXE"
)

// Status is the display state of a room. It is a hint for the front desk;
// real availability is always derived from the booking ledger.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusCleaning    Status = "CLEANING"
	StatusReserved    Status = "RESERVED"
)

// Amenities are the premium fittings of a room. Standard rooms have none,
// VIP rooms the first two, Deluxe rooms all five.
type Amenities struct {
	View            bool
	PrivateBathroom bool
	Jacuzzi         bool
	Minibar         bool
	LivingRoom      bool
}

// variantSpec holds everything that differs between room variants.
type variantSpec struct {
	displayName  string
	multiplier   float64
	basePrice    float64
	bedCount     int
	area         float64
	maxOccupancy int
	amenities    Amenities
}

var variantSpecs = map[Type]variantSpec{
	TypeStandard: {
		displayName:  "Standard Room",
		multiplier:   1.0,
		basePrice:    500000,
		bedCount:     1,
		area:         20.0,
		maxOccupancy: 2,
	},
	TypeVIP: {
		displayName:  "VIP Room",
		multiplier:   1.2,
		basePrice:    1000000,
		bedCount:     2,
		area:         35.0,
		maxOccupancy: 3,
		amenities:    Amenities{View: true, PrivateBathroom: true},
	},
	TypeDeluxe: {
		displayName:  "Deluxe Room",
		multiplier:   1.5,
		basePrice:    1500000,
		bedCount:     2,
		area:         50.0,
		maxOccupancy: 4,
		amenities:    Amenities{View: true, PrivateBathroom: true, Jacuzzi: true, Minibar: true, LivingRoom: true},
	},
}

// Types lists all variants in display order.
func Types() []Type {
	return []Type{TypeStandard, TypeVIP, TypeDeluxe}
}

func (t Type) Valid() bool {
	_, ok := variantSpecs[t]
	return ok
}

func (t Type) DisplayName() string {
	return variantSpecs[t].displayName
}

// Multiplier is the per-variant nightly price factor.
func (t Type) Multiplier() float64 {
	return variantSpecs[t].multiplier
}

func (t Type) DefaultBasePrice() float64 {
	return variantSpecs[t].basePrice
}

func (t Type) DefaultBedCount() int {
	return variantSpecs[t].bedCount
}

func (t Type) DefaultArea() float64 {
	return variantSpecs[t].area
}

func (t Type) MaxOccupancy() int {
	return variantSpecs[t].maxOccupancy
}

func (t Type) DefaultAmenities() Amenities {
	return variantSpecs[t].amenities
}

// TypeFromString matches the enum name or the display name, ignoring case.
// Returns false if the text matches no variant.
func TypeFromString(text string) (Type, bool) {
	for typ, spec := range variantSpecs {
		if strings.EqualFold(text, string(typ)) || strings.EqualFold(text, spec.displayName) {
			return typ, true
		}
	}
	return "", false
}

var statusNames = map[Status]string{
	StatusAvailable:   "Available",
	StatusOccupied:    "Occupied",
	StatusMaintenance: "Under Maintenance",
	StatusCleaning:    "Being Cleaned",
	StatusReserved:    "Reserved",
}

// Statuses lists all room statuses.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning, StatusReserved}
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) DisplayName() string {
	return statusNames[s]
}

// CanBook reports whether a new booking may even be attempted against this
// room. Only AVAILABLE qualifies; RESERVED is a display state produced by the
// ledger sync, not a gate.
func (s Status) CanBook() bool {
	return s == StatusAvailable
}

// StatusFromString matches the enum name or the display name, ignoring case.
func StatusFromString(text string) (Status, bool) {
	for status, name := range statusNames {
		if strings.EqualFold(text, string(status)) || strings.EqualFold(text, name) {
			return status, true
		}
	}
	return "", false
}
