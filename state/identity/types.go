package identity

import (
	"fritter/engine/library"
)

type Mapped map[library.Username]User

// User is the identity document for one account. The map key is the lowercased
// username; the Username field keeps the case the user signed up with.
type User struct {
	UID       string
	Username  library.Username
	Interests []library.Keyword
	Following []library.Username
	Followers []library.Username
	Verified  bool
	Admin     bool // holds the administrative capability over the verified status program
	Order     int64
}
