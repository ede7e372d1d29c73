package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/pkg/consts"
	"Habitude/internal/pkg/redis"
	"Habitude/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const MaxCacheSize = 1000

type UserFollowService interface {
	GetUserFollowers(ctx context.Context, userId uint64, limit, offset int) ([]*dto.FollowUserDTO, error)
	GetUserFollowing(ctx context.Context, userId uint64, limit, offset int) ([]*dto.FollowUserDTO, error)
	GetUserFollowerCount(ctx context.Context, userId uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userId uint64) (int64, error)
	GetSomeoneIsFollowing(ctx context.Context, userId, followingId uint64) (bool, error)
	CreateUserFollow(ctx context.Context, userFollow *model.UserFollow) error
	DeleteUserFollow(ctx context.Context, userFollow *model.UserFollow) error
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &UserFollowServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

type fetchListFunc func(ctx context.Context, userId uint64, limit, offset int) ([]*model.UserFollow, error)
type fetchCountFunc func(ctx context.Context, userId uint64) (int64, error)

// GetUserFollowers 获取粉丝列表，附带公开资料和是否已回关
func (s *UserFollowServiceImpl) GetUserFollowers(ctx context.Context, userId uint64, limit, offset int) ([]*dto.FollowUserDTO, error) {
	follows, err := s.getFollowListCommon(
		ctx, userId, limit, offset,
		consts.UserFollowerKey,
		true,
		s.userFollowRepo.GetUserFollowers,
	)
	if err != nil {
		return nil, err
	}

	followerIds := make([]uint64, 0, len(follows))
	for _, f := range follows {
		followerIds = append(followerIds, f.FollowerID)
	}

	items, err := s.joinUserInfo(ctx, follows, followerIds, true)
	if err != nil {
		return nil, err
	}

	// 标记回关
	if len(followerIds) > 0 {
		followedBack, err := s.userFollowRepo.GetFollowingIn(ctx, userId, followerIds)
		if err != nil {
			return nil, err
		}
		backSet := make(map[uint64]struct{}, len(followedBack))
		for _, id := range followedBack {
			backSet[id] = struct{}{}
		}
		for _, item := range items {
			_, ok := backSet[item.UserID]
			isBack := ok
			item.IsFollowingBack = &isBack
		}
	}
	return items, nil
}

// GetUserFollowing 获取关注列表，附带公开资料
func (s *UserFollowServiceImpl) GetUserFollowing(ctx context.Context, userId uint64, limit, offset int) ([]*dto.FollowUserDTO, error) {
	follows, err := s.getFollowListCommon(
		ctx, userId, limit, offset,
		consts.UserFollowingKey,
		false,
		s.userFollowRepo.GetUserFollowing,
	)
	if err != nil {
		return nil, err
	}

	followingIds := make([]uint64, 0, len(follows))
	for _, f := range follows {
		followingIds = append(followingIds, f.FollowingID)
	}
	return s.joinUserInfo(ctx, follows, followingIds, false)
}

func (s *UserFollowServiceImpl) GetUserFollowerCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowerCountKey,
		s.userFollowRepo.GetUserFollowerCount,
	)
}

func (s *UserFollowServiceImpl) GetUserFollowingCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowingCountKey,
		s.userFollowRepo.GetUserFollowingCount,
	)
}

func (s *UserFollowServiceImpl) GetSomeoneIsFollowing(ctx context.Context, userId, followingId uint64) (bool, error) {
	userFollow, err := s.userFollowRepo.GetUserFollow(ctx, userId, followingId)
	if err != nil {
		return false, err
	}
	return userFollow != nil, nil
}

// CreateUserFollow 创建关注关系。先做自关注与目标存在性校验，
// 重复关注最终由联合主键裁决，并发下只有一个请求成功
func (s *UserFollowServiceImpl) CreateUserFollow(ctx context.Context, userFollow *model.UserFollow) error {
	if userFollow.FollowerID == userFollow.FollowingID {
		return ErrUserFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, userFollow.FollowingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	isFollowing, err := s.GetSomeoneIsFollowing(ctx, userFollow.FollowerID, userFollow.FollowingID)
	if err != nil {
		return err
	}
	if isFollowing {
		return ErrUserFollowExist
	}

	userFollow.CreatedAt = time.Now()

	if err = s.userFollowRepo.CreateUserFollow(ctx, userFollow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserFollowExist
		}
		return err
	}

	s.invalidateCache(ctx, userFollow)
	return nil
}

func (s *UserFollowServiceImpl) DeleteUserFollow(ctx context.Context, userFollow *model.UserFollow) error {
	rows, err := s.userFollowRepo.DeleteUserFollow(ctx, userFollow)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserFollowNotFound
	}

	s.invalidateCache(ctx, userFollow)
	return nil
}

func (s *UserFollowServiceImpl) joinUserInfo(ctx context.Context, follows []*model.UserFollow, ids []uint64, isFollowerList bool) ([]*dto.FollowUserDTO, error) {
	items := make([]*dto.FollowUserDTO, 0, len(follows))
	if len(ids) == 0 {
		return items, nil
	}

	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for _, f := range follows {
		id := f.FollowingID
		if isFollowerList {
			id = f.FollowerID
		}
		user, ok := userMap[id]
		if !ok {
			continue
		}
		items = append(items, &dto.FollowUserDTO{
			UserID:     user.ID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			AvatarURL:  user.AvatarURL,
			FollowedAt: f.CreatedAt,
		})
	}
	return items, nil
}

func (s *UserFollowServiceImpl) invalidateCache(ctx context.Context, userFollow *model.UserFollow) {
	follower := strconv.FormatUint(userFollow.FollowerID, 10)
	following := strconv.FormatUint(userFollow.FollowingID, 10)
	_ = redis.DeleteKey(ctx, consts.UserFollowingKey+follower)
	_ = redis.DeleteKey(ctx, consts.UserFollowerKey+following)
	_ = redis.DeleteKey(ctx, consts.UserFollowingCountKey+follower)
	_ = redis.DeleteKey(ctx, consts.UserFollowerCountKey+following)
}

func (s *UserFollowServiceImpl) getFollowListCommon(
	ctx context.Context,
	userId uint64,
	limit, offset int,
	keyPrefix string,
	isFollowerList bool,
	fetchDB fetchListFunc,
) ([]*model.UserFollow, error) {
	rdb := redis.GetRdbClient()
	if rdb == nil || offset+limit > MaxCacheSize {
		return fetchDB(ctx, userId, limit, offset)
	}

	key := keyPrefix + strconv.FormatUint(userId, 10)

	res, err := rdb.ZRevRangeWithScores(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err == nil && len(res) != 0 {
		return s.zSetResToUserFollow(userId, res, isFollowerList)
	}

	dbData, err := fetchDB(ctx, userId, MaxCacheSize, 0)
	if err != nil {
		return nil, err
	}
	if len(dbData) == 0 {
		return []*model.UserFollow{}, nil
	}

	go func(data []*model.UserFollow, cacheKey string, isFollower bool) {
		_ = redis.DeleteKey(context.Background(), cacheKey) // 使用 Background context 防止 cancel
		pipe := rdb.Pipeline()
		zMembers := make([]redisv9.Z, 0, len(data))

		for _, item := range data {
			memberID := item.FollowerID
			if !isFollower {
				memberID = item.FollowingID
			}

			zMembers = append(zMembers, redisv9.Z{
				Score:  float64(item.CreatedAt.Unix()),
				Member: memberID,
			})
		}
		pipe.ZAdd(context.Background(), cacheKey, zMembers...)
		pipe.Expire(context.Background(), cacheKey, time.Hour*1)
		_, _ = pipe.Exec(context.Background())
	}(dbData, key, isFollowerList)

	start := offset
	end := offset + limit
	if start >= len(dbData) {
		return []*model.UserFollow{}, nil
	}
	if end > len(dbData) {
		end = len(dbData)
	}

	return dbData[start:end], nil
}

func (s *UserFollowServiceImpl) getCountCommon(
	ctx context.Context,
	userId uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userId, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := fetchDB(ctx, userId)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

func (s *UserFollowServiceImpl) zSetResToUserFollow(ownerId uint64, res []redisv9.Z, isFollowerList bool) ([]*model.UserFollow, error) {
	userFollows := make([]*model.UserFollow, 0, len(res))
	for _, v := range res {
		id, err := strconv.ParseUint(v.Member.(string), 10, 64)
		if err != nil {
			return nil, err
		}
		createdAt := v.Score

		item := &model.UserFollow{}

		if isFollowerList {
			item.FollowingID = ownerId
			item.FollowerID = id
		} else {
			item.FollowerID = ownerId
			item.FollowingID = id
		}
		item.CreatedAt = time.Unix(int64(createdAt), 0)

		userFollows = append(userFollows, item)
	}
	return userFollows, nil
}
