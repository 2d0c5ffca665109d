package service

import (
	"context"
	"errors"

	"pospenjualan/internal/config"
	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context, filter dto.UserFilter) (*dto.UserListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	// Delete removes an account. The actor cannot delete themselves.
	Delete(ctx context.Context, id, actorID uuid.UUID) error
	// UpdateProfile edits the caller's own name, username and optionally the
	// password, all inside one transaction.
	UpdateProfile(ctx context.Context, id uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req dto.ChangePasswordRequest) error
}

type userService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewUserService(repo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{repo: repo, cfg: cfg}
}

func (s *userService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(b), err
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	level := model.Role(req.Level)
	if !level.Valid() {
		return nil, errors.New("level must be 1, 2 or 3")
	}
	taken, err := s.repo.UsernameTaken(ctx, req.Username, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.New("username already in use")
	}
	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hashed,
		Level:        level,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return userToResponse(user), nil
}

func (s *userService) List(ctx context.Context, filter dto.UserFilter) (*dto.UserListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		data = append(data, *userToResponse(&users[i]))
	}
	return &dto.UserListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Level != 0 {
		level := model.Role(req.Level)
		if !level.Valid() {
			return nil, errors.New("level must be 1, 2 or 3")
		}
		user.Level = level
	}
	if req.Password != "" {
		hashed, err := s.hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == actorID {
		return errors.New("you cannot delete your own account")
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	taken, err := s.repo.UsernameTaken(ctx, req.Username, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.New("username already in use")
	}

	user.Name = req.Name
	user.Username = req.Username
	if req.Password != "" {
		hashed, err := s.hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			return s.repo.Update(ctx, user)
		}
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req dto.ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return errors.New("old password is incorrect")
	}
	hashed, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	return s.repo.Update(ctx, user)
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Level:    int(u.Level),
		Role:     u.Level.Name(),
	}
}
