package content

import (
	"fritter/engine/library"
)

type Mapped map[library.ContentID]Content

// Content is one posted item. IsFact is immutable after creation; only fact-tagged
// items accept endorsements or denouncements, and only the ledger mind mutates the
// Endorsers and Denouncers sets.
type Content struct {
	UID        library.ContentID
	Author     library.Username
	Body       string
	IsFact     bool
	Endorsers  []library.Username
	Denouncers []library.Username
	CreatedAt  int64
	UpdatedAt  int64
	Order      int64
}
