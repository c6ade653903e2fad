package content

import (
	"sort"

	"fritter/engine/library"
)

func GetMap() Mapped {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	m := make(Mapped)
	for id, c := range currentState.data {
		m[id] = c
	}
	return m
}

func Get(id library.ContentID) (Content, bool) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	c, ok := currentState.data[id]
	return c, ok
}

// RecentFirst returns every content item, most recent first. Insertion order breaks
// timestamp ties so that scans over the corpus are deterministic.
func RecentFirst() []Content {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	items := make([]Content, 0, len(currentState.data))
	for _, c := range currentState.data {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].Order > items[j].Order
	})
	return items
}
