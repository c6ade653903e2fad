package vsp

import (
	"time"

	"fritter/engine/library"
	"fritter/state/identity"
)

// Submit opens a request for the verified status program. Only one live request
// (pending or granted) may exist per username; a revoked request is retired and is
// replaced by the new one.
func Submit(username library.Username, justification string) (Request, error) {
	startDb()
	u, exists := identity.GetUser(username)
	if !exists {
		return Request{}, library.NotFoundf("no user found with username %s", username)
	}
	if u.Verified {
		return Request{}, library.Preconditionf("user %s is already verified", u.Username)
	}
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	if existing, ok := currentState.data[key(username)]; ok && existing.Status != StatusRevoked {
		return Request{}, library.Preconditionf("user %s already has a %s request", u.Username, existing.Status)
	}
	r := Request{
		Username:      u.Username,
		Justification: justification,
		Status:        StatusPending,
		RequestedAt:   time.Now().Unix(),
	}
	currentState.upsert(r)
	return r, nil
}

// Accept grants a pending request. The request document and the user's verified
// flag change together under the request lock, so no reader sees one without the
// other.
func Accept(admin, username library.Username) (Request, identity.User, error) {
	startDb()
	if !identity.IsAdmin(admin) {
		return Request{}, identity.User{}, library.Unauthorizedf("user %s does not hold the administrative capability", admin)
	}
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	r, exists := currentState.data[key(username)]
	if !exists || r.Status == StatusRevoked {
		return Request{}, identity.User{}, library.NotFoundf("no live request found for username %s", username)
	}
	if r.Status == StatusGranted {
		return Request{}, identity.User{}, library.Preconditionf("the request for user %s has already been granted", r.Username)
	}
	u, err := identity.UpdateUser(username, func(u identity.User) (identity.User, error) {
		u.Verified = true
		return u, nil
	})
	if err != nil {
		return Request{}, identity.User{}, err
	}
	r.Status = StatusGranted
	r.DecidedAt = time.Now().Unix()
	r.DecidedBy = admin
	currentState.upsert(r)
	return r, u, nil
}

// Revoke withdraws a granted request and clears the user's verified flag, under the
// same atomicity discipline as Accept. A new Submit is required before the user can
// be verified again.
func Revoke(admin, username library.Username) (Request, identity.User, error) {
	startDb()
	if !identity.IsAdmin(admin) {
		return Request{}, identity.User{}, library.Unauthorizedf("user %s does not hold the administrative capability", admin)
	}
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	r, exists := currentState.data[key(username)]
	if !exists {
		return Request{}, identity.User{}, library.NotFoundf("no request found for username %s", username)
	}
	if r.Status != StatusGranted {
		return Request{}, identity.User{}, library.Preconditionf("the request for user %s has not been granted", r.Username)
	}
	u, err := identity.UpdateUser(username, func(u identity.User) (identity.User, error) {
		u.Verified = false
		return u, nil
	})
	if err != nil {
		return Request{}, identity.User{}, err
	}
	r.Status = StatusRevoked
	r.DecidedAt = time.Now().Unix()
	r.DecidedBy = admin
	currentState.upsert(r)
	return r, u, nil
}

// Delete removes a request document outright. Admin only. A granted request must be
// revoked first, so the user's verified flag can never be stranded without a live
// request behind it.
func Delete(admin, username library.Username) error {
	startDb()
	if !identity.IsAdmin(admin) {
		return library.Unauthorizedf("user %s does not hold the administrative capability", admin)
	}
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	r, exists := currentState.data[key(username)]
	if !exists {
		return library.NotFoundf("no request found for username %s", username)
	}
	if r.Status == StatusGranted {
		return library.Preconditionf("the request for user %s has been granted and must be revoked before deletion", r.Username)
	}
	delete(currentState.data, key(username))
	return nil
}
