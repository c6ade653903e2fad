package vsp

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

var started = false
var available = &deadlock.Mutex{}

// StartDb starts the database for this mind (the Mind-state). It blocks until the database is ready to use.
func startDb() {
	available.Lock()
	defer available.Unlock()
	if !started {
		started = true
		ready := make(chan struct{})
		go start(ready)
		<-ready //This channel listener blocks until closed by `start`.
		actors.LogCLI("VSP Mind has started", 4)
	}
}

func start(ready chan struct{}) {
	actors.GetWaitGroup().Add(1)
	if c, ok := actors.Open("vsp", "current"); ok {
		currentState.restoreFromDisk(c)
	}
	close(ready)
	<-actors.GetTerminateChan()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	currentState.persistToDisk()
	actors.GetWaitGroup().Done()
	actors.LogCLI("VSP Mind has shut down", 4)
}

func (s *db) restoreFromDisk(f *os.File) {
	s.mutex.Lock()
	err := json.NewDecoder(f).Decode(&s.data)
	if err != nil {
		if err.Error() != "EOF" {
			library.LogCLI(err.Error(), 0)
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
	actors.Write("vsp", "current", b)
}

// upsert stores a request under its canonical key. Caller must hold the mutex.
func (s *db) upsert(r Request) {
	s.data[key(r.Username)] = r
}

func key(username library.Username) library.Username {
	return strings.ToLower(strings.TrimSpace(username))
}
