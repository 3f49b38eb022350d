package access

// Role is the only role a credential can carry.
const RoleAdmin = "admin"

// State is a client's admin status. It is never stored server-side: a
// client is logged in exactly while it holds a credential that verifies.
type State string

const (
	LoggedOut State = "logged_out"
	LoggedIn  State = "logged_in"
)
