package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

type UserService struct {
	users      store.UserStore
	tasks      store.TaskStore
	bcryptCost int
}

func NewUserService(users store.UserStore, tasks store.TaskStore, bcryptCost int) *UserService {
	return &UserService{users: users, tasks: tasks, bcryptCost: bcryptCost}
}

func userResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (s *UserService) Profile(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (dto.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return dto.UserResponse{}, err
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return dto.UserResponse{}, invalid("name", "is required")
		}
		user.Name = name
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return dto.UserResponse{}, err
		}
		user.Password = hash
	}
	if err := s.users.UpdateUser(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}
	return userResponse(user), nil
}

// DeleteAccount is refused while the user still owns tasks.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	n, err := s.tasks.CountTasks(ctx, userID)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("account still owns %d tasks: %w", n, store.ErrHasDependents)
	}
	return s.users.DeleteUser(ctx, userID)
}
