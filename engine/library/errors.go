package library

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation so the request layer can map it onto a protocol response.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindPrecondition
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPrecondition:
		return "precondition"
	case KindNotFound:
		return "not found"
	case KindUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// Fault is a failed state change. State minds return these instead of logging.
type Fault struct {
	Kind Kind
	Msg  string
}

func (f *Fault) Error() string {
	return f.Msg
}

func Validationf(format string, a ...interface{}) error {
	return &Fault{Kind: KindValidation, Msg: fmt.Sprintf(format, a...)}
}

func Preconditionf(format string, a ...interface{}) error {
	return &Fault{Kind: KindPrecondition, Msg: fmt.Sprintf(format, a...)}
}

func NotFoundf(format string, a ...interface{}) error {
	return &Fault{Kind: KindNotFound, Msg: fmt.Sprintf(format, a...)}
}

func Unauthorizedf(format string, a ...interface{}) error {
	return &Fault{Kind: KindUnauthorized, Msg: fmt.Sprintf(format, a...)}
}

// KindOf returns the Kind of any error produced by a state mind.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}
