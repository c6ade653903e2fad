package identity

import (
	"sort"

	"fritter/engine/library"
)

func GetMap() Mapped {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	return getMap()
}

func getMap() Mapped {
	m := make(Mapped)
	for username, u := range currentState.data {
		m[username] = u
	}
	return m
}

// GetUser looks a user up by username, case-insensitively.
func GetUser(username library.Username) (User, bool) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	u, ok := currentState.data[key(username)]
	return u, ok
}

// VerifiedUsers returns every user currently holding the verified flag, oldest
// account first.
func VerifiedUsers() []User {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	var verified []User
	for _, u := range currentState.data {
		if u.Verified {
			verified = append(verified, u)
		}
	}
	sort.Slice(verified, func(i, j int) bool {
		return verified[i].Order < verified[j].Order
	})
	return verified
}

// IsAdmin reports whether the given username holds the administrative capability.
func IsAdmin(username library.Username) bool {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	u, ok := currentState.data[key(username)]
	if !ok {
		return false
	}
	return u.Admin
}
