// internal/auth/session.go
package auth

import "sync"

// Session tracks the signed-in operator. One session exists per running
// application; it is constructed by main and passed down, not a global.
type Session struct {
	mu          sync.RWMutex
	userID      string
	username    string
	displayName string
	role        Role
	permissions map[Permission]bool
	loggedIn    bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Login(userID, username, displayName string, role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.username = username
	s.displayName = displayName
	s.role = role
	s.permissions = PermissionsByRole(role)
	s.loggedIn = true
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.username = ""
	s.displayName = ""
	s.role = ""
	s.permissions = nil
	s.loggedIn = false
}

func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// HasPermission reports whether the operator may perform an action. A session
// without a login allows everything; that is the skip-login development mode.
func (s *Session) HasPermission(p Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loggedIn {
		return true
	}
	return s.permissions[p]
}

// HasAnyPermission requires a login, unlike HasPermission.
func (s *Session) HasAnyPermission(perms ...Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loggedIn || s.permissions == nil {
		return false
	}
	for _, p := range perms {
		if s.permissions[p] {
			return true
		}
	}
	return false
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role == RoleAdmin
}

// IsManager is true for managers and admins alike.
func (s *Session) IsManager() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role == RoleManager || s.role == RoleAdmin
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayName
}

func (s *Session) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}
