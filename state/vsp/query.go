package vsp

import (
	"sort"

	"fritter/engine/library"
	"fritter/state/identity"
)

func GetMap() Mapped {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	m := make(Mapped)
	for username, r := range currentState.data {
		m[username] = r
	}
	return m
}

// Get returns the request document for a username, if any.
func Get(username library.Username) (Request, bool) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	r, ok := currentState.data[key(username)]
	return r, ok
}

// ListPending returns every undecided request, oldest first. Admin only.
func ListPending(admin library.Username) ([]Request, error) {
	startDb()
	if !identity.IsAdmin(admin) {
		return nil, library.Unauthorizedf("user %s does not hold the administrative capability", admin)
	}
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	var pending []Request
	for _, r := range currentState.data {
		if r.Status == StatusPending {
			pending = append(pending, r)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].RequestedAt != pending[j].RequestedAt {
			return pending[i].RequestedAt < pending[j].RequestedAt
		}
		return pending[i].Username < pending[j].Username
	})
	return pending, nil
}

// ListVerified returns every user currently holding the verified flag. Admin only.
func ListVerified(admin library.Username) ([]identity.User, error) {
	startDb()
	if !identity.IsAdmin(admin) {
		return nil, library.Unauthorizedf("user %s does not hold the administrative capability", admin)
	}
	return identity.VerifiedUsers(), nil
}
