package content

import (
	"encoding/json"
	"os"

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
		ready := make(chan struct{})
		go start(ready)
		<-ready //This channel listener blocks until closed by `start`.
		actors.LogCLI("Content Mind has started", 4)
	}
}

func start(ready chan struct{}) {
	actors.GetWaitGroup().Add(1)
	if c, ok := actors.Open("content", "current"); ok {
		currentState.restoreFromDisk(c)
	}
	close(ready)
	<-actors.GetTerminateChan()
	currentState.mutex.Lock()
	defer currentState.mutex.Unlock()
	currentState.persistToDisk()
	actors.GetWaitGroup().Done()
	actors.LogCLI("Content Mind has shut down", 4)
}

func (s *db) restoreFromDisk(f *os.File) {
	s.mutex.Lock()
	err := json.NewDecoder(f).Decode(&s.data)
	if err != nil {
		if err.Error() != "EOF" {
			library.LogCLI(err.Error(), 0)
		}
	}
	for _, c := range s.data {
		if c.Order > insertionOrder {
			insertionOrder = c.Order
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
	actors.Write("content", "current", b)
}

// upsert stores a content item. Caller must hold the mutex.
func (s *db) upsert(c Content) {
	s.data[c.UID] = c
}
