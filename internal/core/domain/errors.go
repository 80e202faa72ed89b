package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email,
	// inactive account, or wrong password. Deliberately a single value so
	// responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken marks a missing, malformed, tampered, or expired
	// bearer token. Callers must re-authenticate.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden marks an authenticated caller whose role does not
	// satisfy the gate. Not retryable without a privilege change.
	ErrForbidden = errors.New("insufficient privilege")

	// ErrEmailTaken is the store's uniqueness conflict on signup.
	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")

	// ErrCorruptCredential means the stored password hash is not a valid
	// bcrypt value. This is data corruption, a server error, never to be
	// reported as a bad password.
	ErrCorruptCredential = errors.New("stored credential is corrupt")

	// ErrResetTokenInvalid marks an unknown or expired password-reset token.
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")

	// ErrStoreUnavailable wraps transient persistence failures. Retry is
	// the caller's decision, never done here.
	ErrStoreUnavailable = errors.New("identity store unavailable")
)
