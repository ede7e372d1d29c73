package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/pkg/consts"
	"Habitude/internal/pkg/redis"
	"Habitude/internal/pkg/security"
	"Habitude/internal/repository"
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error
	SearchUsers(ctx context.Context, viewerId uint64, keyword string, limit int) ([]*dto.SearchUserDTO, error)
}

type UserServiceImpl struct {
	userRepo       repository.UserRepo
	userFollowRepo repository.UserFollowRepo
}

func NewUserService(userRepo repository.UserRepo, userFollowRepo repository.UserFollowRepo) UserService {
	return &UserServiceImpl{
		userRepo:       userRepo,
		userFollowRepo: userFollowRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserUsernameExist
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserEmailExist
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = &passwordHash
	if user.AvatarURL == "" {
		user.AvatarURL = consts.DefaultAvatarURL
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 注册并发撞名时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserUsernameExist
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	var (
		user *model.User
		err  error
	)
	switch {
	case credentialDTO.Username != nil:
		user, err = s.userRepo.GetUserByUsername(ctx, *credentialDTO.Username)
	case credentialDTO.Email != nil:
		user, err = s.userRepo.GetUserByEmail(ctx, *credentialDTO.Email)
	default:
		return "", ErrMissingLoginCredentials
	}
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if user.Password == nil || security.CheckPasswordHash(credentialDTO.Password, *user.Password) != nil {
		return "", ErrPasswordIncorrect
	}

	username := ""
	if user.Username != nil {
		username = *user.Username
	}
	return security.GenerateToken(user.ID, username)
}

// Logout 把 token 签名写入黑名单，有效期与 token 剩余寿命一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if userDTO.FirstName != nil {
		user.FirstName = *userDTO.FirstName
	}
	if userDTO.LastName != nil {
		user.LastName = *userDTO.LastName
	}
	if userDTO.AvatarURL != nil {
		user.AvatarURL = *userDTO.AvatarURL
	}
	return s.userRepo.UpdateUser(ctx, user)
}

// SearchUsers 按关键字搜索用户并标记是否已关注
func (s *UserServiceImpl) SearchUsers(ctx context.Context, viewerId uint64, keyword string, limit int) ([]*dto.SearchUserDTO, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 2 {
		return nil, ErrParamInvalid
	}
	if limit <= 0 {
		limit = 10
	}

	users, err := s.userRepo.SearchUsers(ctx, keyword, viewerId, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SearchUserDTO, 0, len(users))
	if len(users) == 0 {
		return items, nil
	}

	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	followed, err := s.userFollowRepo.GetFollowingIn(ctx, viewerId, ids)
	if err != nil {
		return nil, err
	}
	followedSet := make(map[uint64]struct{}, len(followed))
	for _, id := range followed {
		followedSet[id] = struct{}{}
	}

	for _, u := range users {
		_, isFollowing := followedSet[u.ID]
		items = append(items, &dto.SearchUserDTO{
			UserID:      u.ID,
			Username:    u.Username,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			AvatarURL:   u.AvatarURL,
			IsFollowing: isFollowing,
		})
	}
	return items, nil
}
