package usecase

import (
	"context"
	"errors"
	"fmt"

	"clipstream/pkg/cdn"
	"clipstream/pkg/logger"
	"clipstream/services/catalog/internal/entity"
	"clipstream/services/catalog/internal/repo/persistent"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNotOwner      = errors.New("video belongs to another user")
	ErrNotEncoded    = errors.New("video is still encoding")
)

// CDNClient is the slice of the CDN API the catalog needs.
type CDNClient interface {
	CreateVideo(ctx context.Context, title string) (*cdn.VideoInfo, error)
	GetVideoInfo(ctx context.Context, guid string) (*cdn.VideoInfo, error)
	DeleteVideo(ctx context.Context, guid string) error
	UploadURL(guid string) string
}

type CatalogUseCase interface {
	CreateVideo(ctx context.Context, userID, title, description, category string) (*entity.Video, string, error)
	CompleteUpload(ctx context.Context, videoID, userID string) (*entity.Video, error)
	ListVideos(category string, limit, offset int) ([]*entity.Video, error)
	SearchVideos(query string, limit, offset int) ([]*entity.Video, error)
	GetVideo(videoID string) (*entity.Video, error)
	GetCreatorVideos(creatorID string, limit, offset int) ([]*entity.Video, error)
	DeleteVideo(ctx context.Context, videoID, userID, role string) error
}

type catalogUseCase struct {
	videoRepo persistent.VideoRepository
	cdnClient CDNClient
	logger    *logger.Logger
}

func NewCatalogUseCase(videoRepo persistent.VideoRepository, cdnClient CDNClient, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		videoRepo: videoRepo,
		cdnClient: cdnClient,
		logger:    logger,
	}
}

// CreateVideo registers the video with the CDN and persists metadata in
// status processing. The returned URL is where the client uploads the file.
func (uc *catalogUseCase) CreateVideo(ctx context.Context, userID, title, description, category string) (*entity.Video, string, error) {
	if title == "" {
		return nil, "", fmt.Errorf("title is required")
	}

	info, err := uc.cdnClient.CreateVideo(ctx, title)
	if err != nil {
		uc.logger.Error("Failed to create CDN video: %v", err)
		return nil, "", fmt.Errorf("failed to create video")
	}

	video := &entity.Video{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		CDNVideoID:  info.GUID,
		Status:      entity.StatusProcessing,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to persist video metadata: %v", err)
		return nil, "", fmt.Errorf("failed to create video")
	}

	return video, uc.cdnClient.UploadURL(info.GUID), nil
}

// CompleteUpload checks encode progress with the CDN and moves the video from
// processing into the moderation queue once it is playable.
func (uc *catalogUseCase) CompleteUpload(ctx context.Context, videoID, userID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	if video.UserID != userID {
		return nil, ErrNotOwner
	}
	if video.Status != entity.StatusProcessing {
		return video, nil
	}

	info, err := uc.cdnClient.GetVideoInfo(ctx, video.CDNVideoID)
	if err != nil {
		uc.logger.Error("Failed to query CDN for video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to check encode status")
	}
	if info.Status != cdn.StatusEncoded {
		return nil, ErrNotEncoded
	}

	video.Duration = info.Length
	video.ThumbnailURL = info.ThumbnailURL
	video.Status = entity.StatusPending
	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to update video")
	}

	return video, nil
}

func (uc *catalogUseCase) ListVideos(category string, limit, offset int) ([]*entity.Video, error) {
	return uc.videoRepo.List(category, normalizeLimit(limit), offset)
}

func (uc *catalogUseCase) SearchVideos(query string, limit, offset int) ([]*entity.Video, error) {
	return uc.videoRepo.Search(query, normalizeLimit(limit), offset)
}

// GetVideo returns the video only when it is publicly visible.
func (uc *catalogUseCase) GetVideo(videoID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	if video.Status != entity.StatusApproved {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

func (uc *catalogUseCase) GetCreatorVideos(creatorID string, limit, offset int) ([]*entity.Video, error) {
	return uc.videoRepo.GetByCreator(creatorID, normalizeLimit(limit), offset)
}

func (uc *catalogUseCase) DeleteVideo(ctx context.Context, videoID, userID, role string) error {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("failed to load video: %w", err)
	}
	if video.UserID != userID && role != "admin" {
		return ErrNotOwner
	}

	// CDN cleanup is best-effort; the metadata row is the source of truth.
	if video.CDNVideoID != "" {
		if err := uc.cdnClient.DeleteVideo(ctx, video.CDNVideoID); err != nil {
			uc.logger.Warn("Failed to delete CDN video %s: %v", video.CDNVideoID, err)
		}
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		uc.logger.Error("Failed to delete video %s: %v", videoID, err)
		return fmt.Errorf("failed to delete video")
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
