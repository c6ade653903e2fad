package identity

import (
	"fritter/engine/library"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

func newUser(username library.Username) User {
	insertionOrder++
	return User{
		UID:      uuid.NewString(),
		Username: username,
		Order:    insertionOrder,
	}
}

// CreateUser registers a new identity document. Usernames are unique
// case-insensitively; the caller has already authenticated the signup itself.
func CreateUser(username library.Username) (User, error) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	if len(key(username)) == 0 {
		return User{}, library.Validationf("cannot create a user with an empty username")
	}
	if _, taken := currentState.data[key(username)]; taken {
		return User{}, library.Preconditionf("username %s is already taken", username)
	}
	u := newUser(username)
	currentState.upsert(u)
	return u, nil
}

// DeleteUser removes an identity document and withdraws every edge that references
// it, so that graph symmetry holds for the users that remain. Content cascade is
// handled by the conductor.
func DeleteUser(username library.Username) error {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	u, exists := currentState.data[key(username)]
	if !exists {
		return library.NotFoundf("no user found with username %s", username)
	}
	for _, followed := range u.Following {
		if other, ok := currentState.data[key(followed)]; ok {
			other.Followers = remove(other.Followers, u.Username)
			currentState.upsert(other)
		}
	}
	for _, follower := range u.Followers {
		if other, ok := currentState.data[key(follower)]; ok {
			other.Following = remove(other.Following, u.Username)
			currentState.upsert(other)
		}
	}
	delete(currentState.data, key(username))
	return nil
}

// AddInterest records a new interest keyword on the user's document.
func AddInterest(username library.Username, keyword library.Keyword) (User, error) {
	return UpdateUser(username, func(u User) (User, error) {
		if len(keyword) == 0 {
			return u, library.Validationf("cannot add an empty interest")
		}
		if slices.Contains(u.Interests, keyword) {
			return u, library.Preconditionf("user %s already has the interest %s", u.Username, keyword)
		}
		u.Interests = append(u.Interests, keyword)
		return u, nil
	})
}

// RemoveInterest deletes an interest keyword from the user's document.
func RemoveInterest(username library.Username, keyword library.Keyword) (User, error) {
	return UpdateUser(username, func(u User) (User, error) {
		if !slices.Contains(u.Interests, keyword) {
			return u, library.Preconditionf("user %s does not have the interest %s", u.Username, keyword)
		}
		u.Interests = remove(u.Interests, keyword)
		return u, nil
	})
}

// UpdateUser runs fn against the named user's document under the store lock and
// persists the result. If fn returns an error the document is left untouched.
func UpdateUser(username library.Username, fn func(User) (User, error)) (User, error) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	u, exists := currentState.data[key(username)]
	if !exists {
		return User{}, library.NotFoundf("no user found with username %s", username)
	}
	updated, err := fn(u)
	if err != nil {
		return User{}, err
	}
	currentState.upsert(updated)
	return updated, nil
}

// UpdatePair runs fn against two user documents under one acquisition of the store
// lock. Either both resulting documents are stored or neither is, so a dual-document
// update is observed as atomic by every reader.
func UpdatePair(a, b library.Username, fn func(User, User) (User, User, error)) (User, User, error) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	ua, exists := currentState.data[key(a)]
	if !exists {
		return User{}, User{}, library.NotFoundf("no user found with username %s", a)
	}
	ub, exists := currentState.data[key(b)]
	if !exists {
		return User{}, User{}, library.NotFoundf("no user found with username %s", b)
	}
	updatedA, updatedB, err := fn(ua, ub)
	if err != nil {
		return User{}, User{}, err
	}
	currentState.upsert(updatedA)
	currentState.upsert(updatedB)
	return updatedA, updatedB, nil
}

func remove(list []string, item string) []string {
	i := slices.Index(list, item)
	if i < 0 {
		return list
	}
	return append(list[:i:i], list[i+1:]...)
}
