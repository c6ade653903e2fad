package graph

import (
	"strings"

	"fritter/engine/library"
	"fritter/state/identity"
	"fritter/state/recommend"
	"golang.org/x/exp/slices"
)

// Follow adds a directed edge from actor to target. The edge is projected onto both
// identity documents — target joins actor's following list and actor joins target's
// followers list — inside one acquisition of the identity store lock, so no reader
// can ever observe a half-applied edge.
func Follow(actor, target library.Username) (identity.User, error) {
	if strings.EqualFold(strings.TrimSpace(actor), strings.TrimSpace(target)) {
		return identity.User{}, library.Preconditionf("user %s cannot follow themselves", actor)
	}
	updated, _, err := identity.UpdatePair(actor, target, func(a, b identity.User) (identity.User, identity.User, error) {
		if slices.Contains(a.Following, b.Username) {
			return a, b, library.Preconditionf("user %s is already following %s", a.Username, b.Username)
		}
		a.Following = append(a.Following, b.Username)
		b.Followers = append(b.Followers, a.Username)
		return a, b, nil
	})
	if err != nil {
		return identity.User{}, err
	}
	recommend.Flush(actor)
	return updated, nil
}

// Unfollow removes the edge from actor to target from both projections, all or
// nothing, under the same discipline as Follow.
func Unfollow(actor, target library.Username) (identity.User, error) {
	updated, _, err := identity.UpdatePair(actor, target, func(a, b identity.User) (identity.User, identity.User, error) {
		if !slices.Contains(a.Following, b.Username) {
			return a, b, library.Preconditionf("user %s is not following %s", a.Username, b.Username)
		}
		a.Following = withoutEntry(a.Following, b.Username)
		b.Followers = withoutEntry(b.Followers, a.Username)
		return a, b, nil
	})
	if err != nil {
		return identity.User{}, err
	}
	recommend.Flush(actor)
	return updated, nil
}

// AddInterest records an interest keyword on the actor's document and invalidates
// any memoized recommendations for them.
func AddInterest(actor library.Username, keyword library.Keyword) (identity.User, error) {
	updated, err := identity.AddInterest(actor, keyword)
	if err != nil {
		return identity.User{}, err
	}
	recommend.Flush(actor)
	return updated, nil
}

// RemoveInterest deletes an interest keyword from the actor's document.
func RemoveInterest(actor library.Username, keyword library.Keyword) (identity.User, error) {
	updated, err := identity.RemoveInterest(actor, keyword)
	if err != nil {
		return identity.User{}, err
	}
	recommend.Flush(actor)
	return updated, nil
}

func withoutEntry(list []library.Username, entry library.Username) []library.Username {
	i := slices.Index(list, entry)
	if i < 0 {
		return list
	}
	return append(list[:i:i], list[i+1:]...)
}
