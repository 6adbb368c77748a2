// Package session persists the logged-in user's identity across runs.
//
// The session is exactly two values: an access token and a user id. They are
// written together on a successful sign-in or sign-up, read by the dashboard
// when no in-memory user is available, and cleared together on logout.
package session

// Logical keys. These are the only keys a Store is expected to hold.
const (
	KeyAccessToken = "accessToken"
	KeyUserID      = "userId"
)

// Store is the session context handed to the components that need it.
type Store interface {
	// Get returns the value for a key and whether it was present.
	Get(key string) (string, bool)
	// Set writes a single key.
	Set(key, value string) error
	// Remove deletes a single key. Removing an absent key is not an error.
	Remove(key string) error
	// Clear removes all keys atomically; after Clear neither session key
	// may remain persisted.
	Clear() error
}

// SaveLogin persists both session keys for a freshly authenticated user.
func SaveLogin(s Store, accessToken, userID string) error {
	if err := s.Set(KeyAccessToken, accessToken); err != nil {
		return err
	}
	return s.Set(KeyUserID, userID)
}

// UserID returns the persisted user id, if any.
func UserID(s Store) (string, bool) {
	return s.Get(KeyUserID)
}

// HasLogin reports whether both session keys are present.
func HasLogin(s Store) bool {
	if _, ok := s.Get(KeyAccessToken); !ok {
		return false
	}
	_, ok := s.Get(KeyUserID)
	return ok
}
