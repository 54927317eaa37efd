package state

import "github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"

// Phase is the auth container's position in its session state machine.
type Phase int

// Auth phases. Unauthenticated is the initial state; logout always
// returns to it.
const (
	Unauthenticated Phase = iota
	Authenticating
	Authenticated
)

// AuthState is the auth container's state.
type AuthState struct {
	Phase   Phase
	Session auth.Session
	Error   string
}

// IsAuthenticated reports whether a session is established.
func (s AuthState) IsAuthenticated() bool { return s.Phase == Authenticated }

// Loading reports whether a login or registration is in flight.
func (s AuthState) Loading() bool { return s.Phase == Authenticating }

// Auth container actions.
type (
	// LoginStart marks a login attempt in flight and clears any error.
	LoginStart struct{}
	// LoginSuccess establishes a session.
	LoginSuccess struct{ Session auth.Session }
	// LoginFailure records the display message for a failed login.
	LoginFailure struct{ Message string }
	// RegisterStart marks a registration attempt in flight.
	RegisterStart struct{}
	// RegisterSuccess establishes the session issued at registration.
	RegisterSuccess struct{ Session auth.Session }
	// RegisterFailure records the display message for a failed registration.
	RegisterFailure struct{ Message string }
	// RestoreAuth re-establishes a session found in durable storage.
	RestoreAuth struct{ Session auth.Session }
	// Logout resets the container to its initial state.
	Logout struct{}
)

func reduceAuth(s AuthState, action any) AuthState {
	switch a := action.(type) {
	case LoginStart, RegisterStart:
		s.Phase = Authenticating
		s.Error = ""
	case LoginSuccess:
		s.Phase = Authenticated
		s.Session = a.Session
		s.Error = ""
	case RegisterSuccess:
		s.Phase = Authenticated
		s.Session = a.Session
		s.Error = ""
	case RestoreAuth:
		s.Phase = Authenticated
		s.Session = a.Session
		s.Error = ""
	case LoginFailure:
		s.Phase = Unauthenticated
		s.Session = auth.Session{}
		s.Error = a.Message
	case RegisterFailure:
		s.Phase = Unauthenticated
		s.Session = auth.Session{}
		s.Error = a.Message
	case Logout:
		s = AuthState{}
	}
	return s
}

// NewAuth builds the auth container in the Unauthenticated state.
func NewAuth() *Container[AuthState] {
	return NewContainer(AuthState{}, reduceAuth, nil)
}
