package securestore

import "context"

// AuthState is what the app should do at startup.
type AuthState int

const (
	// StateLoggedOut: no valid session, send the user to onboarding/login.
	StateLoggedOut AuthState = iota
	// StateBiometricRequired: a session exists but must be confirmed
	// biometrically first.
	StateBiometricRequired
	// StateAuthenticated: a session exists and can be used directly.
	StateAuthenticated
)

func (a AuthState) String() string {
	switch a {
	case StateLoggedOut:
		return "logged_out"
	case StateBiometricRequired:
		return "biometric_required"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// AuthStatus combines the session and the biometric flag into the startup
// decision.
func (s *Store) AuthStatus(ctx context.Context) AuthState {
	if _, ok := s.GetUserSession(ctx); !ok {
		return StateLoggedOut
	}
	if s.BiometricEnabled(ctx) {
		return StateBiometricRequired
	}
	return StateAuthenticated
}
