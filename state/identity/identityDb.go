package identity

import (
	"encoding/json"
	"os"
	"strings"

	"fritter/engine/actors"
	"fritter/engine/library"
	"github.com/sasha-s/go-deadlock"
)

type db struct {
	data  Mapped
	mutex *deadlock.Mutex
}

var currentState = db{
	data:  make(Mapped),
	mutex: &deadlock.Mutex{},
}

var insertionOrder int64

var started = false
var available = &deadlock.Mutex{}

// StartDb starts the database for this mind (the Mind-state). It blocks until the database is ready to use.
func startDb() {
	available.Lock()
	defer available.Unlock()
	if !started {
		started = true
		// we need a channel to listen for a successful database start
		ready := make(chan struct{})
		// now we can start the database in a new goroutine
		go start(ready)
		// when the database has started, the goroutine will close the `ready` channel.
		<-ready //This channel listener blocks until closed by `start`.
		actors.LogCLI("Identity Mind has started", 4)
	}
}

func start(ready chan struct{}) {
	// We add a delta to the global waitgroup so that upstream knows when the database has been safely shut down
	actors.GetWaitGroup().Add(1)
	// Load current state from disk
	if c, ok := actors.Open("identity", "current"); ok {
		currentState.restoreFromDisk(c)
	}
	insertAdminIdentities()
	close(ready)
	<-actors.GetTerminateChan()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	currentState.persistToDisk()
	actors.GetWaitGroup().Done()
	actors.LogCLI("Identity Mind has shut down", 4)
}

// SeedAdmins re-applies the admins config setting to the store. The store start does
// this on its own; callers only need it after changing the setting at runtime.
func SeedAdmins() {
	startDb()
	insertAdminIdentities()
}

// insertAdminIdentities makes sure every username in the admins config setting exists
// and carries the administrative capability, so that the workflow has an authority to
// answer to even on a cold start.
func insertAdminIdentities() {
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	for _, admin := range actors.MakeOrGetConfig().GetStringSlice("admins") {
		u, exists := currentState.data[key(admin)]
		if !exists {
			u = newUser(admin)
		}
		u.Admin = true
		currentState.upsert(u)
	}
}

func (s *db) restoreFromDisk(f *os.File) {
	s.mutex.Lock()
	err := json.NewDecoder(f).Decode(&s.data)
	if err != nil {
		if err.Error() != "EOF" {
			library.LogCLI(err.Error(), 0)
		}
	}
	for _, u := range s.data {
		if u.Order > insertionOrder {
			insertionOrder = u.Order
		}
	}
	s.mutex.Unlock()
	err = f.Close()
	if err != nil {
		library.LogCLI(err.Error(), 0)
	}
}

// persistToDisk persists the current state to disk. Caller must hold the mutex.
func (s *db) persistToDisk() {
	b, err := json.MarshalIndent(s.data, "", " ")
	if err != nil {
		library.LogCLI(err.Error(), 0)
	}
	actors.Write("identity", "current", b)
}

// upsert stores a user under its canonical key. Caller must hold the mutex.
func (s *db) upsert(u User) {
	s.data[key(u.Username)] = u
}

// key canonicalizes a username. Usernames are unique case-insensitively.
func key(username library.Username) library.Username {
	return strings.ToLower(strings.TrimSpace(username))
}
