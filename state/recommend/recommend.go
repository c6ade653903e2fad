package recommend

import (
	"strings"
	"time"

	"fritter/engine/actors"
	"fritter/engine/library"
	"fritter/state/content"
	"fritter/state/identity"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sasha-s/go-deadlock"
)

// The recommender is pure read-side: it scans the content corpus most-recent-first
// and suggests authors whose items mention one of the caller's interests. A full
// scan is O(items x interests), so results are memoized per username for a short
// TTL; mutations that change the inputs flush the affected entry.

var memo *gocache.Cache
var memoMutex = &deadlock.Mutex{}

func getMemo() *gocache.Cache {
	memoMutex.Lock()
	defer memoMutex.Unlock()
	if memo == nil {
		ttl := 30 * time.Second
		if conf := actors.MakeOrGetConfig(); conf != nil {
			if seconds := conf.GetInt("recommendCacheSeconds"); seconds > 0 {
				ttl = time.Duration(seconds) * time.Second
			}
		}
		memo = gocache.New(ttl, 2*ttl)
	}
	return memo
}

// Flush drops the memoized recommendations for one username.
func Flush(username library.Username) {
	getMemo().Delete(key(username))
}

// FlushAll drops every memoized recommendation. Content mutations change the scan
// input for every user, so the whole memo goes.
func FlushAll() {
	getMemo().Flush()
}

// Recommend returns authors the user may want to follow, ordered by the recency of
// the first content item that matched one of the user's interests. The user
// themselves and anyone already followed are never suggested.
func Recommend(username library.Username) ([]identity.User, error) {
	u, exists := identity.GetUser(username)
	if !exists {
		return nil, library.NotFoundf("no user found with username %s", username)
	}
	if len(u.Interests) == 0 {
		return nil, library.Preconditionf("user %s has no interests to recommend from", u.Username)
	}
	if cached, ok := getMemo().Get(key(username)); ok {
		return resolve(cached.([]library.Username)), nil
	}

	excluded := make(map[library.Username]struct{})
	excluded[key(u.Username)] = struct{}{}
	for _, followed := range u.Following {
		excluded[key(followed)] = struct{}{}
	}

	var authors []library.Username
	seen := make(map[library.Username]struct{})
	for _, c := range content.RecentFirst() {
		if _, skip := excluded[key(c.Author)]; skip {
			continue
		}
		if _, already := seen[key(c.Author)]; already {
			continue
		}
		if !matchesAny(c.Body, u.Interests) {
			continue
		}
		if _, ok := identity.GetUser(c.Author); !ok {
			continue
		}
		seen[key(c.Author)] = struct{}{}
		authors = append(authors, c.Author)
	}
	getMemo().Set(key(username), authors, gocache.DefaultExpiration)
	return resolve(authors), nil
}

// resolve maps memoized author usernames back onto live identity documents. Only
// usernames are cached, so callers never share a slice and an account deleted
// inside the TTL silently drops out of the suggestions.
func resolve(authors []library.Username) []identity.User {
	var users []identity.User
	for _, author := range authors {
		if u, ok := identity.GetUser(author); ok {
			users = append(users, u)
		}
	}
	return users
}

// matchesAny reports whether the body contains any interest as a literal substring.
func matchesAny(body string, interests []library.Keyword) bool {
	for _, interest := range interests {
		if strings.Contains(body, interest) {
			return true
		}
	}
	return false
}

func key(username library.Username) library.Username {
	return strings.ToLower(strings.TrimSpace(username))
}
