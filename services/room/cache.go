package room

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/utils"
)

const (
	roomListCacheKey = "rooms:all"
	roomListCacheTTL = 30 * time.Second
)

// cachedRoomList returns the listing from Redis, or redis.Nil on a miss.
func (s *DefaultRoomService) cachedRoomList(ctx context.Context) ([]models.Room, error) {
	data, err := s.Cache.Get(ctx, roomListCacheKey).Result()
	if err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := json.Unmarshal([]byte(data), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *DefaultRoomService) storeRoomList(ctx context.Context, rooms []models.Room) {
	data, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, roomListCacheKey, data, roomListCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache room listing", zap.Error(err))
	}
}

// invalidateRoomList drops the cached listing after any room mutation.
func (s *DefaultRoomService) invalidateRoomList(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, roomListCacheKey).Err(); err != nil && err != redis.Nil {
		utils.GetLogger().Warn("failed to invalidate room listing cache", zap.Error(err))
	}
}
