package vsp

import (
	"fritter/engine/library"
)

// Status is the explicit lifecycle of a verified status program request. A revoked
// request is retired: it no longer blocks a fresh submission.
type Status string

const (
	StatusPending Status = "pending"
	StatusGranted Status = "granted"
	StatusRevoked Status = "revoked"
)

type Mapped map[library.Username]Request

// Request is the workflow document for one username. At most one live request
// (pending or granted) exists per username.
type Request struct {
	Username      library.Username
	Justification string
	Status        Status
	RequestedAt   int64
	DecidedAt     int64
	DecidedBy     library.Username
}
