package service

import (
	"context"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	"github.com/truythudien/truythu-api/internal/domain/enum"
	"github.com/truythudien/truythu-api/internal/domain/policy"
	"github.com/truythudien/truythu-api/internal/domain/repository"
	"github.com/truythudien/truythu-api/pkg/apperror"
	"github.com/truythudien/truythu-api/pkg/utils"
)

// UserService handles admin user management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the input for creating an account.
// CallerRole is the role of the administrator performing the request,
// Role the role of the account being created.
type CreateUserInput struct {
	Username   string
	Password   string
	Role       enum.Role
	CallerRole enum.Role
}

// CreateUser creates a new account. Account management is gated on the
// access policy; duplicate usernames and malformed input fail as a client
// error, matching the account-creation contract.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if !policy.Allowed(input.CallerRole, policy.OpManageUsers) {
		return nil, apperror.ErrForbidden
	}
	if input.Username == "" || input.Password == "" {
		return nil, apperror.NewBadRequestError("Tên người dùng đã tồn tại hoặc dữ liệu không hợp lệ")
	}

	role := input.Role
	if role == "" {
		role = enum.RoleUser
	}
	if !role.IsValid() {
		return nil, apperror.NewBadRequestError("Vai trò không hợp lệ")
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("Tên người dùng đã tồn tại hoặc dữ liệu không hợp lệ")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Password: hashed,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.NewBadRequestError("Tên người dùng đã tồn tại hoặc dữ liệu không hợp lệ")
	}

	return user, nil
}

// ListUsers returns all accounts to an allowed caller. Password hashes are
// excluded from the JSON encoding at the entity level.
func (s *UserService) ListUsers(ctx context.Context, callerRole enum.Role) ([]entity.User, error) {
	if !policy.Allowed(callerRole, policy.OpManageUsers) {
		return nil, apperror.ErrForbidden
	}
	return s.userRepo.List(ctx)
}
