package ledger

import (
	"fritter/engine/library"
	"fritter/state/content"
	"fritter/state/identity"
	"golang.org/x/exp/slices"
)

// The ledger mutates the endorser and denouncer sets on one content item. Every
// operation is gated the same way: the actor must hold the verified flag and the
// item must be fact-tagged. The mutations themselves are set-inserts and
// set-removes, so a repeated call reports its membership precondition but can never
// produce a duplicate entry.

func Endorse(id library.ContentID, actor library.Username) (content.Content, error) {
	return mutate(id, actor, func(c content.Content, by library.Username) (content.Content, error) {
		if slices.Contains(c.Endorsers, by) {
			return c, library.Preconditionf("user %s has already endorsed content %s", by, id)
		}
		c.Endorsers = insert(c.Endorsers, by)
		return c, nil
	})
}

func Unendorse(id library.ContentID, actor library.Username) (content.Content, error) {
	return mutate(id, actor, func(c content.Content, by library.Username) (content.Content, error) {
		if !slices.Contains(c.Endorsers, by) {
			return c, library.Preconditionf("user %s has not endorsed content %s", by, id)
		}
		c.Endorsers = withoutEntry(c.Endorsers, by)
		return c, nil
	})
}

func Denounce(id library.ContentID, actor library.Username) (content.Content, error) {
	return mutate(id, actor, func(c content.Content, by library.Username) (content.Content, error) {
		if slices.Contains(c.Denouncers, by) {
			return c, library.Preconditionf("user %s has already denounced content %s", by, id)
		}
		c.Denouncers = insert(c.Denouncers, by)
		return c, nil
	})
}

func Undenounce(id library.ContentID, actor library.Username) (content.Content, error) {
	return mutate(id, actor, func(c content.Content, by library.Username) (content.Content, error) {
		if !slices.Contains(c.Denouncers, by) {
			return c, library.Preconditionf("user %s has not denounced content %s", by, id)
		}
		c.Denouncers = withoutEntry(c.Denouncers, by)
		return c, nil
	})
}

// mutate runs the gate checks and applies fn under the content store lock. The
// actor's username is canonicalized to the case it was stored with, so ledger
// membership stays case-consistent.
func mutate(id library.ContentID, actor library.Username, fn func(content.Content, library.Username) (content.Content, error)) (content.Content, error) {
	u, exists := identity.GetUser(actor)
	if !exists {
		return content.Content{}, library.NotFoundf("no user found with username %s", actor)
	}
	if !u.Verified {
		return content.Content{}, library.Unauthorizedf("user %s is not verified and cannot endorse or denounce facts", u.Username)
	}
	return content.Update(id, func(c content.Content) (content.Content, error) {
		if !c.IsFact {
			return c, library.Preconditionf("content %s is not fact-tagged", id)
		}
		return fn(c, u.Username)
	})
}

// insert adds a username to a set, keeping it a set even if the membership check was
// skipped.
func insert(set []library.Username, entry library.Username) []library.Username {
	if slices.Contains(set, entry) {
		return set
	}
	return append(set, entry)
}

func withoutEntry(set []library.Username, entry library.Username) []library.Username {
	i := slices.Index(set, entry)
	if i < 0 {
		return set
	}
	return append(set[:i:i], set[i+1:]...)
}
