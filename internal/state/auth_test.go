package state

import (
	"testing"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
)

func demoSession() auth.Session {
	return auth.Session{
		Token: "local_token_demo-1_1700000000000",
		User:  auth.User{ID: "demo-1", Username: "demo", Email: "demo@streambox.com"},
	}
}

func TestAuth_LoginSuccessEstablishesSession(t *testing.T) {
	c := NewAuth()
	defer c.Close()

	next := c.Dispatch(LoginStart{})
	if !next.Loading() || next.Error != "" {
		t.Fatalf("after LoginStart: %+v, want loading with no error", next)
	}

	next = c.Dispatch(LoginSuccess{Session: demoSession()})
	if !next.IsAuthenticated() {
		t.Fatalf("after LoginSuccess phase = %v, want Authenticated", next.Phase)
	}
	if next.Session.User.Username != "demo" {
		t.Fatalf("session user = %+v, want demo", next.Session.User)
	}
	if next.Error != "" {
		t.Fatalf("error = %q, want empty", next.Error)
	}
}

func TestAuth_LoginFailureClearsSessionAndRecordsMessage(t *testing.T) {
	c := NewAuth()
	defer c.Close()

	c.Dispatch(LoginSuccess{Session: demoSession()})
	c.Dispatch(LoginStart{})
	next := c.Dispatch(LoginFailure{Message: "Invalid email or password"})

	if next.IsAuthenticated() || next.Loading() {
		t.Fatalf("after LoginFailure phase = %v, want Unauthenticated", next.Phase)
	}
	if next.Session != (auth.Session{}) {
		t.Fatalf("session = %+v, want cleared", next.Session)
	}
	if next.Error != "Invalid email or password" {
		t.Fatalf("error = %q, want %q", next.Error, "Invalid email or password")
	}
}

func TestAuth_StartClearsPreviousError(t *testing.T) {
	c := NewAuth()
	defer c.Close()

	c.Dispatch(LoginFailure{Message: "Invalid email or password"})
	next := c.Dispatch(LoginStart{})
	if next.Error != "" {
		t.Fatalf("LoginStart kept error %q, want cleared", next.Error)
	}

	c.Dispatch(RegisterFailure{Message: "Email already registered"})
	next = c.Dispatch(RegisterStart{})
	if next.Error != "" {
		t.Fatalf("RegisterStart kept error %q, want cleared", next.Error)
	}
}

func TestAuth_RestoreBehavesLikeLogin(t *testing.T) {
	c := NewAuth()
	defer c.Close()

	next := c.Dispatch(RestoreAuth{Session: demoSession()})
	if !next.IsAuthenticated() {
		t.Fatalf("after RestoreAuth phase = %v, want Authenticated", next.Phase)
	}
	if next.Session.Token == "" {
		t.Fatalf("restored session has no token")
	}
}

func TestAuth_LogoutResetsToInitialState(t *testing.T) {
	c := NewAuth()
	defer c.Close()

	c.Dispatch(LoginSuccess{Session: demoSession()})
	next := c.Dispatch(Logout{})

	if next != (AuthState{}) {
		t.Fatalf("after Logout state = %+v, want zero value", next)
	}
}
