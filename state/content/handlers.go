package content

import (
	"strings"
	"time"

	"fritter/engine/library"
	"github.com/google/uuid"
)

// Create stores a new content item. The request layer has already validated
// ownership and the body itself; IsFact cannot be changed afterwards.
func Create(author library.Username, body string, isFact bool) (Content, error) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	if len(author) == 0 {
		return Content{}, library.Validationf("cannot create content without an author")
	}
	insertionOrder++
	now := time.Now().Unix()
	c := Content{
		UID:       uuid.NewString(),
		Author:    author,
		Body:      body,
		IsFact:    isFact,
		CreatedAt: now,
		UpdatedAt: now,
		Order:     insertionOrder,
	}
	currentState.upsert(c)
	return c, nil
}

// Delete removes one content item. Only the author may delete it.
func Delete(id library.ContentID, actor library.Username) error {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	c, exists := currentState.data[id]
	if !exists {
		return library.NotFoundf("no content found with id %s", id)
	}
	// usernames are unique case-insensitively, so the ownership check must be too
	if !strings.EqualFold(c.Author, actor) {
		return library.Unauthorizedf("user %s is not the author of content %s", actor, id)
	}
	delete(currentState.data, id)
	return nil
}

// DeleteByAuthor removes every item by the given author. Used by the account
// deletion cascade.
func DeleteByAuthor(author library.Username) int {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	removed := 0
	for id, c := range currentState.data {
		if strings.EqualFold(c.Author, author) {
			delete(currentState.data, id)
			removed++
		}
	}
	return removed
}

// Update runs fn against one content document under the store lock and persists the
// result. If fn returns an error the document is left untouched.
func Update(id library.ContentID, fn func(Content) (Content, error)) (Content, error) {
	startDb()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	c, exists := currentState.data[id]
	if !exists {
		return Content{}, library.NotFoundf("no content found with id %s", id)
	}
	updated, err := fn(c)
	if err != nil {
		return Content{}, err
	}
	updated.UpdatedAt = time.Now().Unix()
	currentState.upsert(updated)
	return updated, nil
}
