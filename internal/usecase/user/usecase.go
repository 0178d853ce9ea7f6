package user

import (
	"context"

	"go.uber.org/zap"

	domain "student-registration-service/internal/domain/user"
	pkgerrors "student-registration-service/pkg/errors"
	"student-registration-service/pkg/logger"
)

// Repository defines the storage operations the usecase relies on.
// Implementations must be safe for concurrent use.
type Repository interface {
	Register(candidate domain.User) domain.User // Assign an ID and append
	ListAll() []domain.User                     // Snapshot in insertion order
	DeleteByID(id int64) bool                   // Remove by ID, false when absent
}

// Service implements Usecase on top of a Repository.
type Service struct {
	repo Repository  // Repository holding all registered users
	log  *zap.Logger // Logger for structured logging
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

var _ Usecase = (*Service)(nil)

// RegisterUser stores a new student. No field is validated.
func (s *Service) RegisterUser(ctx context.Context, in RegisterUserRequest) (*RegisterUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	stored := s.repo.Register(domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Course:       in.Course,
		StudentClass: in.StudentClass,
		Percentage:   in.Percentage,
		Branch:       in.Branch,
		MobileNumber: in.MobileNumber,
	})

	log.Info("user registered", zap.Int64("id", stored.ID))
	return &RegisterUserResponse{User: fromDomain(stored)}, nil
}

// ListUsers returns every registered student in registration order.
func (s *Service) ListUsers(ctx context.Context, _ ListUsersRequest) (*ListUsersResponse, error) {
	domainUsers := s.repo.ListAll()

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = fromDomain(du)
	}

	logger.WithContext(ctx, s.log).Debug("listing users", zap.Int("count", len(users)))
	return &ListUsersResponse{Users: users}, nil
}

// DeleteUser removes a student by ID.
// A missing ID yields pkg/errors.ErrUserNotFound.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if !s.repo.DeleteByID(in.ID) {
		log.Info("delete requested for unknown user", zap.Int64("id", in.ID))
		return nil, pkgerrors.ErrUserNotFound
	}

	log.Info("user deleted", zap.Int64("id", in.ID))
	return &DeleteUserResponse{ID: in.ID}, nil
}

func fromDomain(u domain.User) User {
	return User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Course:       u.Course,
		StudentClass: u.StudentClass,
		Percentage:   u.Percentage,
		Branch:       u.Branch,
		MobileNumber: u.MobileNumber,
	}
}
