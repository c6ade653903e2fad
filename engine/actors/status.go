package actors

import (
	"sync"

	"fritter/engine/library"
)

var terminateChan chan struct{}

func SetTerminateChan(term chan struct{}) {
	terminateChan = term
}

func GetTerminateChan() chan struct{} {
	return terminateChan
}

var waitGroup = &sync.WaitGroup{}

// GetWaitGroup returns the global waitgroup. Every state mind adds a delta on start
// and releases it once it has persisted and shut down, so that main can block on a
// clean exit.
func GetWaitGroup() *sync.WaitGroup {
	return waitGroup
}

func LogCLI(message interface{}, level int) {
	library.LogCLI(message, level)
}
