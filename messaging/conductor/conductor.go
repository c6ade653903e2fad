package conductor

import (
	"fmt"

	"fritter/engine/actors"
	"fritter/engine/library"
	"fritter/state/content"
	"fritter/state/graph"
	"fritter/state/identity"
	"fritter/state/ledger"
	"fritter/state/recommend"
	"fritter/state/vsp"
	"github.com/sasha-s/go-deadlock"
)

// The conductor owns every mutating operation: the request layer publishes a typed
// Request and a single dispatch goroutine invokes exactly one state mind, so all
// state changes pass through one writer on top of the per-mind locks. Read-only
// queries go straight to the minds.

type Kind int

const (
	KindCreateUser Kind = iota
	KindDeleteUser
	KindFollow
	KindUnfollow
	KindAddInterest
	KindRemoveInterest
	KindCreateContent
	KindDeleteContent
	KindEndorse
	KindUnendorse
	KindDenounce
	KindUndenounce
	KindSubmitRequest
	KindAcceptRequest
	KindRevokeRequest
	KindDeleteRequest
)

// Request is one state change to be applied. Actor is the authenticated caller;
// the remaining fields are read per Kind.
type Request struct {
	Kind          Kind
	Actor         library.Username
	Target        library.Username
	Keyword       library.Keyword
	ContentID     library.ContentID
	Body          string
	IsFact        bool
	Justification string
	reply         chan Result
}

// Result carries whichever entities the operation updated, for serialization by the
// response layer.
type Result struct {
	User       identity.User
	Content    content.Content
	VSPRequest vsp.Request
	Err        error
}

var requestChan = make(chan Request)

var started = false
var available = &deadlock.Mutex{}

// Start launches the dispatch goroutine. Safe to call more than once.
func Start() {
	available.Lock()
	defer available.Unlock()
	if !started {
		started = true
		go handleRequests()
		actors.LogCLI("Conductor has started", 4)
	}
}

// Publish applies one state change and blocks until it has been dispatched.
func Publish(r Request) Result {
	Start()
	r.reply = make(chan Result)
	requestChan <- r
	return <-r.reply
}

func handleRequests() {
	actors.GetWaitGroup().Add(1)
	for {
		select {
		case r := <-requestChan:
			r.reply <- dispatch(r)
		case <-actors.GetTerminateChan():
			actors.GetWaitGroup().Done()
			actors.LogCLI("Conductor has shut down", 4)
			return
		}
	}
}

func dispatch(r Request) (result Result) {
	switch r.Kind {
	case KindCreateUser:
		result.User, result.Err = identity.CreateUser(r.Actor)
	case KindDeleteUser:
		result.Err = identity.DeleteUser(r.Actor)
		if result.Err == nil {
			content.DeleteByAuthor(r.Actor)
			recommend.FlushAll()
		}
	case KindFollow:
		result.User, result.Err = graph.Follow(r.Actor, r.Target)
	case KindUnfollow:
		result.User, result.Err = graph.Unfollow(r.Actor, r.Target)
	case KindAddInterest:
		result.User, result.Err = graph.AddInterest(r.Actor, r.Keyword)
	case KindRemoveInterest:
		result.User, result.Err = graph.RemoveInterest(r.Actor, r.Keyword)
	case KindCreateContent:
		result.Content, result.Err = content.Create(r.Actor, r.Body, r.IsFact)
		if result.Err == nil {
			recommend.FlushAll()
		}
	case KindDeleteContent:
		result.Err = content.Delete(r.ContentID, r.Actor)
		if result.Err == nil {
			recommend.FlushAll()
		}
	case KindEndorse:
		result.Content, result.Err = ledger.Endorse(r.ContentID, r.Actor)
	case KindUnendorse:
		result.Content, result.Err = ledger.Unendorse(r.ContentID, r.Actor)
	case KindDenounce:
		result.Content, result.Err = ledger.Denounce(r.ContentID, r.Actor)
	case KindUndenounce:
		result.Content, result.Err = ledger.Undenounce(r.ContentID, r.Actor)
	case KindSubmitRequest:
		result.VSPRequest, result.Err = vsp.Submit(r.Actor, r.Justification)
	case KindAcceptRequest:
		result.VSPRequest, result.User, result.Err = vsp.Accept(r.Actor, r.Target)
	case KindRevokeRequest:
		result.VSPRequest, result.User, result.Err = vsp.Revoke(r.Actor, r.Target)
	case KindDeleteRequest:
		result.Err = vsp.Delete(r.Actor, r.Target)
	default:
		result.Err = fmt.Errorf("I am the conductor, a request of kind %d was sent to me but I don't know how to handle it", r.Kind)
	}
	return result
}
