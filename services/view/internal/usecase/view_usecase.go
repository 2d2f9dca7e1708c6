package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clipstream/pkg/logger"
	"clipstream/services/view/internal/entity"
	"clipstream/services/view/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

var ErrVideoNotFound = errors.New("video not found or not approved")

const viewCountTTL = 5 * time.Minute

// ViewCountCache is the slice of redis the view counter uses. *redis.Client
// satisfies it.
type ViewCountCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type ViewUseCase interface {
	RecordView(videoID, ipAddress, userAgent string, userID *string) (bool, error)
	GetViewCount(videoID string) (int64, error)
}

type viewUseCase struct {
	viewRepo persistent.ViewRepository
	cache    ViewCountCache
	window   time.Duration
	logger   *logger.Logger
}

func NewViewUseCase(
	viewRepo persistent.ViewRepository,
	cache ViewCountCache,
	duplicateWindow time.Duration,
	logger *logger.Logger,
) ViewUseCase {
	return &viewUseCase{
		viewRepo: viewRepo,
		cache:    cache,
		window:   duplicateWindow,
		logger:   logger,
	}
}

// RecordView admits or suppresses one play event. Suppression keys on the
// (video, source address) pair only: two accounts behind one address within
// the window still count as a single view. Returns false when the view was
// already counted; that is a normal outcome, not an error.
func (uc *viewUseCase) RecordView(videoID, ipAddress, userAgent string, userID *string) (bool, error) {
	video, err := uc.viewRepo.GetVideo(videoID)
	if err != nil {
		return false, ErrVideoNotFound
	}
	if video.Status != entity.StatusApproved {
		return false, ErrVideoNotFound
	}

	since := time.Now().Add(-uc.window)
	seen, err := uc.viewRepo.HasRecentView(videoID, ipAddress, since)
	if err != nil {
		uc.logger.Error("Failed to probe dedup window: %v", err)
		return false, fmt.Errorf("failed to track view: %w", err)
	}
	if seen {
		return false, nil
	}

	view := &entity.View{
		VideoID:   videoID,
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := uc.viewRepo.CreateViewAndIncrement(view); err != nil {
		uc.logger.Error("Failed to record view: %v", err)
		return false, fmt.Errorf("failed to record view: %w", err)
	}

	// Invalidate rather than increment: an INCR on an absent key would seed
	// the cache at 1 and shadow the real counter. Best-effort; the database
	// counter is authoritative.
	if uc.cache != nil {
		ctx := context.Background()
		uc.cache.Del(ctx, viewCountKey(videoID))
	}

	return true, nil
}

func (uc *viewUseCase) GetViewCount(videoID string) (int64, error) {
	if uc.cache != nil {
		ctx := context.Background()
		countStr, err := uc.cache.Get(ctx, viewCountKey(videoID)).Result()
		if err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	count, err := uc.viewRepo.GetViewCount(videoID)
	if err != nil {
		return 0, ErrVideoNotFound
	}

	if uc.cache != nil {
		ctx := context.Background()
		uc.cache.Set(ctx, viewCountKey(videoID), count, viewCountTTL)
	}
	return count, nil
}

func viewCountKey(videoID string) string {
	return fmt.Sprintf("video:views:%s", videoID)
}
