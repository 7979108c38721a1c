// Package session holds the client's authenticated identity: the bearer token
// issued by the Papilon backend plus the user it belongs to. The state itself
// is a plain value transformed by a pure transition function; durability and
// ownership live in Store.
package session

// Session is the client's belief about the current authenticated identity.
// IsAuthenticated is true exactly when Token is non-empty, and UserID/UserType
// are only meaningful while authenticated. The four fields always change
// together as one value.
type Session struct {
	IsAuthenticated bool
	Token           string
	UserID          int
	UserType        string
}

// EventType identifies a session transition.
type EventType string

const (
	EventLogin   EventType = "LOGIN"
	EventLogout  EventType = "LOGOUT"
	EventSetAuth EventType = "SET_AUTH"
)

// Event carries a session transition and its payload. Token/UserID/UserType
// are ignored for EventLogout.
type Event struct {
	Type     EventType
	Token    string
	UserID   int
	UserType string
}

// Apply maps (current, event) to the next session. LOGIN and SET_AUTH have the
// same effect; SET_AUTH exists to mark re-affirmation of an existing session.
// Unrecognized event types leave the session unchanged. Apply has no side
// effects; persistence happens around it in Store, never inside it.
func Apply(current Session, ev Event) Session {
	switch ev.Type {
	case EventLogin, EventSetAuth:
		// An empty token cannot authenticate anything; identity fields are
		// never kept without one.
		if ev.Token == "" {
			return Session{}
		}
		return Session{
			IsAuthenticated: true,
			Token:           ev.Token,
			UserID:          ev.UserID,
			UserType:        ev.UserType,
		}
	case EventLogout:
		return Session{}
	default:
		return current
	}
}
