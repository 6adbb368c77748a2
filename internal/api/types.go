package api

// Credentials are the values collected by the sign-in form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the sign-up form payload.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData is the authenticated user object the auth endpoints resolve to.
// Only UserID is required by the rest of the app; the token is persisted
// alongside it for future requests.
type UserData struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// addResult is the body of a successful addExpense response. Only the
// optional message is ever used, and only for error reporting.
type addResult struct {
	Message string `json:"message"`
}

// apiError is the error body some endpoints return on non-2xx responses.
type apiError struct {
	Message string `json:"message"`
}
