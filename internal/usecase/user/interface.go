package user

import "context"

// Usecase defines the interface for student registration operations.
type Usecase interface {
	RegisterUser(ctx context.Context, in RegisterUserRequest) (*RegisterUserResponse, error)
	ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error)
}
