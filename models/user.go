package models

// User is the record returned by the user creation endpoint.
// It is built per request and never persisted.
type User struct {
	// ID is the identifier assigned to the created user.
	ID int64 `json:"id"`

	// Username is echoed back from the creation request.
	Username string `json:"username"`
}

// CreateUserRequest is the JSON body accepted by POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
}
