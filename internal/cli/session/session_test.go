package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Login(t *testing.T) {
	next := Apply(Session{}, Event{Type: EventLogin, Token: "T1", UserID: 7, UserType: "local"})

	assert.Equal(t, Session{IsAuthenticated: true, Token: "T1", UserID: 7, UserType: "local"}, next)
}

func TestApply_Logout(t *testing.T) {
	current := Session{IsAuthenticated: true, Token: "T1", UserID: 7, UserType: "local"}

	next := Apply(current, Event{Type: EventLogout})

	assert.Equal(t, Session{}, next)
}

func TestApply_SetAuthEquivalentToLogin(t *testing.T) {
	payload := Event{Token: "T2", UserID: 12, UserType: "local"}

	login := payload
	login.Type = EventLogin
	setAuth := payload
	setAuth.Type = EventSetAuth

	assert.Equal(t, Apply(Session{}, login), Apply(Session{}, setAuth))
}

func TestApply_UnknownEventIsNoOp(t *testing.T) {
	current := Session{IsAuthenticated: true, Token: "T1", UserID: 7, UserType: "local"}

	next := Apply(current, Event{Type: EventType("REFRESH"), Token: "other"})

	assert.Equal(t, current, next)
}

func TestApply_AuthenticatedIffTokenNonEmpty(t *testing.T) {
	events := []Event{
		{Type: EventLogin, Token: "T1", UserID: 7, UserType: "local"},
		{Type: EventSetAuth, Token: "T2", UserID: 7, UserType: "local"},
		{Type: EventLogin, Token: "", UserID: 7, UserType: "local"},
		{Type: EventLogout},
		{Type: EventType("bogus")},
	}

	current := Session{}
	for _, ev := range events {
		current = Apply(current, ev)
		assert.Equal(t, current.Token != "", current.IsAuthenticated,
			"invariant violated after %s", ev.Type)
		if !current.IsAuthenticated {
			assert.Equal(t, Session{}, current,
				"identity fields must be absent while unauthenticated (after %s)", ev.Type)
		}
	}
}
