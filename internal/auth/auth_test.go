package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeUsersFile(t *testing.T, users []User) string {
	t.Helper()
	data, err := json.Marshal(users)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, data, 0664))
	return path
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate(t *testing.T) {
	path := writeUsersFile(t, []User{
		{Username: "minh", PasswordHash: hashOf(t, "s3cret"), DisplayName: "Minh Le", Role: "MANAGER"},
	})
	store := LoadCredentialStore(path)
	require.Equal(t, 1, store.UserCount())

	user, err := store.Authenticate("minh", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Minh Le", user.DisplayName)
	assert.Equal(t, RoleManager, ParseRole(user.Role))

	_, err = store.Authenticate("minh", "wrong")
	assert.Error(t, err)
	_, err = store.Authenticate("ghost", "s3cret")
	assert.Error(t, err)
}

func TestMissingUsersFileFallsBackToDemoAdmin(t *testing.T) {
	store := LoadCredentialStore(filepath.Join(t.TempDir(), "users.json"))
	require.Equal(t, 1, store.UserCount())

	user, err := store.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, ParseRole(user.Role))

	_, err = store.Authenticate("admin", "admin124")
	assert.Error(t, err)
}

func TestCorruptUsersFileFallsBackToDemoAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0664))

	store := LoadCredentialStore(path)
	_, err := store.Authenticate("admin", "admin123")
	assert.NoError(t, err)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleManager, ParseRole(" MANAGER "))
	assert.Equal(t, RoleService, ParseRole("service"))
	assert.Equal(t, RoleStaff, ParseRole("whatever"))
	assert.Equal(t, RoleStaff, ParseRole(""))
}

func TestPermissionsByRole(t *testing.T) {
	admin := PermissionsByRole(RoleAdmin)
	assert.Len(t, admin, len(AllPermissions()))
	assert.True(t, admin[PermManageStaff])

	manager := PermissionsByRole(RoleManager)
	assert.True(t, manager[PermManageRooms])
	assert.True(t, manager[PermManageInvoices])
	assert.False(t, manager[PermManageStaff])
	assert.False(t, manager[PermManageAccounts])

	staff := PermissionsByRole(RoleStaff)
	assert.True(t, staff[PermCreateBooking])
	assert.True(t, staff[PermCreateInvoice])
	assert.False(t, staff[PermManageRooms])
	assert.False(t, staff[PermManageBookings])

	service := PermissionsByRole(RoleService)
	assert.True(t, service[PermProvideServices])
	assert.False(t, service[PermViewCustomers])
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	require.False(t, s.IsLoggedIn())

	s.Login("U001", "minh", "Minh Le", RoleManager)
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "Minh Le", s.DisplayName())
	assert.True(t, s.IsManager())
	assert.False(t, s.IsAdmin())
	assert.True(t, s.HasPermission(PermManageRooms))
	assert.False(t, s.HasPermission(PermManageStaff))
	assert.True(t, s.HasAnyPermission(PermManageStaff, PermViewRooms))
	assert.False(t, s.HasAnyPermission(PermManageStaff, PermManageAccounts))

	s.Logout()
	assert.False(t, s.IsLoggedIn())
	assert.Equal(t, "", s.Username())
}

func TestAnonymousSessionAllowsEverything(t *testing.T) {
	s := NewSession()

	assert.True(t, s.HasPermission(PermManageStaff))
	assert.False(t, s.HasAnyPermission(PermManageStaff))
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsManager())
}
