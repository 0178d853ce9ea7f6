package user

// RegisterUserRequest represents the request payload for registering a student.
// Every field is optional and accepted as-is.
type RegisterUserRequest struct {
	Name         *string
	Email        *string
	Course       *string
	StudentClass *string
	Percentage   *float64
	Branch       *string
	MobileNumber *string
}

// RegisterUserResponse carries the stored record, including its assigned ID.
type RegisterUserResponse struct {
	User User
}

// ListUsersRequest represents the request payload for listing students.
type ListUsersRequest struct{}

// ListUsersResponse represents the response payload for user listing, in registration order.
type ListUsersResponse struct {
	Users []User
}

// DeleteUserRequest represents the request payload for deleting a student.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse represents the response payload after deleting a student.
type DeleteUserResponse struct {
	ID int64
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID           int64
	Name         *string
	Email        *string
	Course       *string
	StudentClass *string
	Percentage   *float64
	Branch       *string
	MobileNumber *string
}
