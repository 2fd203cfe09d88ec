// internal/auth/permissions.go
package auth

import "strings"

// Role groups staff accounts by responsibility.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
	RoleService Role = "SERVICE"
)

var roleNames = map[Role]string{
	RoleAdmin:   "Administrator",
	RoleManager: "Manager",
	RoleStaff:   "Front Desk Staff",
	RoleService: "Service Department",
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) DisplayName() string {
	return roleNames[r]
}

// ParseRole maps a stored role string to a Role, defaulting unknown or empty
// values to STAFF.
func ParseRole(text string) Role {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleManager):
		return RoleManager
	case string(RoleService):
		return RoleService
	default:
		return RoleStaff
	}
}

// Permission is a single capability a screen or action can require.
type Permission string

const (
	PermViewRooms   Permission = "VIEW_ROOMS"
	PermManageRooms Permission = "MANAGE_ROOMS"

	PermViewCustomers   Permission = "VIEW_CUSTOMERS"
	PermManageCustomers Permission = "MANAGE_CUSTOMERS"
	PermVerifyCustomers Permission = "VERIFY_CUSTOMERS"

	PermViewBookings   Permission = "VIEW_BOOKINGS"
	PermCreateBooking  Permission = "CREATE_BOOKING"
	PermManageBookings Permission = "MANAGE_BOOKINGS"

	PermViewInvoices   Permission = "VIEW_INVOICES"
	PermCreateInvoice  Permission = "CREATE_INVOICE"
	PermManageInvoices Permission = "MANAGE_INVOICES"

	PermViewReports   Permission = "VIEW_REPORTS"
	PermExportReports Permission = "EXPORT_REPORTS"

	PermManageStaff    Permission = "MANAGE_STAFF"
	PermManageAccounts Permission = "MANAGE_ACCOUNTS"

	PermViewServices    Permission = "VIEW_SERVICES"
	PermManageServices  Permission = "MANAGE_SERVICES"
	PermProvideServices Permission = "PROVIDE_SERVICES"

	PermViewDashboard Permission = "VIEW_DASHBOARD"
)

// AllPermissions lists every capability, in declaration order.
func AllPermissions() []Permission {
	return []Permission{
		PermViewRooms, PermManageRooms,
		PermViewCustomers, PermManageCustomers, PermVerifyCustomers,
		PermViewBookings, PermCreateBooking, PermManageBookings,
		PermViewInvoices, PermCreateInvoice, PermManageInvoices,
		PermViewReports, PermExportReports,
		PermManageStaff, PermManageAccounts,
		PermViewServices, PermManageServices, PermProvideServices,
		PermViewDashboard,
	}
}

// PermissionsByRole is the role-to-capability table. Admin gets everything;
// Manager everything except staff and account management; Staff covers the
// front desk use cases; Service sees rooms and runs services.
func PermissionsByRole(role Role) map[Permission]bool {
	set := func(perms ...Permission) map[Permission]bool {
		out := make(map[Permission]bool, len(perms))
		for _, p := range perms {
			out[p] = true
		}
		return out
	}

	switch role {
	case RoleAdmin:
		return set(AllPermissions()...)
	case RoleManager:
		return set(
			PermViewRooms, PermManageRooms,
			PermViewCustomers, PermManageCustomers, PermVerifyCustomers,
			PermViewBookings, PermCreateBooking, PermManageBookings,
			PermViewInvoices, PermCreateInvoice, PermManageInvoices,
			PermViewReports, PermExportReports,
			PermViewServices, PermManageServices,
			PermViewDashboard,
		)
	case RoleService:
		return set(
			PermViewRooms,
			PermViewServices, PermProvideServices,
			PermViewDashboard,
		)
	default:
		return set(
			PermViewRooms,
			PermViewCustomers, PermVerifyCustomers,
			PermViewBookings, PermCreateBooking,
			PermViewInvoices, PermCreateInvoice,
			PermViewDashboard,
		)
	}
}
