// internal/auth/credentials.go
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/IvanLyVodka11/hotel-management/internal/logger"
)

const (
	demoUsername = "admin"
	demoPassword = "admin123"
)

// User is one account in users.json.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
}

// CredentialStore verifies operator logins against bcrypt hashes loaded from
// users.json. When the file is missing or unreadable it falls back to a
// single demo admin account so a fresh install can still be entered.
type CredentialStore struct {
	users map[string]User
}

// LoadCredentialStore reads users.json. Any failure degrades to the demo
// admin rather than locking the operator out.
func LoadCredentialStore(path string) *CredentialStore {
	store := &CredentialStore{users: make(map[string]User)}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.LogWarn("Failed to read users file %s: %v", path, err)
		}
		store.addDemoAdmin()
		return store
	}

	var users []User
	if err := json.Unmarshal(content, &users); err != nil {
		logger.LogWarn("Failed to parse users file %s, falling back to demo admin: %v", path, err)
		store.addDemoAdmin()
		return store
	}

	for _, u := range users {
		username := strings.TrimSpace(u.Username)
		if username == "" || u.PasswordHash == "" {
			continue
		}
		u.Username = username
		store.users[username] = u
	}
	if len(store.users) == 0 {
		logger.LogWarn("Users file %s holds no usable accounts, falling back to demo admin", path)
		store.addDemoAdmin()
		return store
	}

	logger.LogInfo("Loaded %d user accounts from %s", len(store.users), path)
	return store
}

func (cs *CredentialStore) addDemoAdmin() {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.LogError("Failed to hash demo admin password: %v", err)
		return
	}
	cs.users[demoUsername] = User{
		Username:     demoUsername,
		PasswordHash: string(hash),
		DisplayName:  "Demo Administrator",
		Role:         string(RoleAdmin),
	}
	logger.LogInfo("Credential store initialized with demo admin account")
}

// Authenticate checks a username/password pair. On success the matched user
// record is returned for session setup.
func (cs *CredentialStore) Authenticate(username, password string) (User, error) {
	user, ok := cs.users[strings.TrimSpace(username)]
	if !ok {
		return User{}, fmt.Errorf("unknown user %q", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, fmt.Errorf("invalid password for user %q", username)
	}
	return user, nil
}

func (cs *CredentialStore) UserCount() int {
	return len(cs.users)
}
