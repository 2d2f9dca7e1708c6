package usecase

import (
	"context"
	"testing"

	"clipstream/pkg/cdn"
	"clipstream/pkg/logger"
	"clipstream/services/catalog/internal/entity"
	"clipstream/services/catalog/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(category string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Search(query string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByCreator(creatorID string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

type MockCDNClient struct {
	mock.Mock
}

func (m *MockCDNClient) CreateVideo(ctx context.Context, title string) (*cdn.VideoInfo, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cdn.VideoInfo), args.Error(1)
}

func (m *MockCDNClient) GetVideoInfo(ctx context.Context, guid string) (*cdn.VideoInfo, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cdn.VideoInfo), args.Error(1)
}

func (m *MockCDNClient) DeleteVideo(ctx context.Context, guid string) error {
	args := m.Called(ctx, guid)
	return args.Error(0)
}

func (m *MockCDNClient) UploadURL(guid string) string {
	args := m.Called(guid)
	return args.String(0)
}

var _ CDNClient = (*MockCDNClient)(nil)

func TestCreateVideo(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockCDN.On("CreateVideo", mock.Anything, "My clip").Return(&cdn.VideoInfo{GUID: "guid-1"}, nil)
	mockCDN.On("UploadURL", "guid-1").Return("https://cdn.example/library/1/videos/guid-1")
	mockRepo.On("Create", mock.AnythingOfType("*entity.Video")).Return(nil)

	video, uploadURL, err := uc.CreateVideo(context.Background(), "creator-1", "My clip", "desc", "music")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, video.Status)
	assert.Equal(t, "guid-1", video.CDNVideoID)
	assert.Equal(t, "https://cdn.example/library/1/videos/guid-1", uploadURL)
	mockRepo.AssertExpectations(t)
	mockCDN.AssertExpectations(t)
}

func TestCreateVideo_EmptyTitle(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	_, _, err := uc.CreateVideo(context.Background(), "creator-1", "", "", "")
	assert.Error(t, err)
	mockCDN.AssertNotCalled(t, "CreateVideo")
}

func TestCompleteUpload_Encoded(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:         "video-1",
		UserID:     "creator-1",
		CDNVideoID: "guid-1",
		Status:     entity.StatusProcessing,
	}, nil)
	mockCDN.On("GetVideoInfo", mock.Anything, "guid-1").Return(&cdn.VideoInfo{
		GUID:         "guid-1",
		Status:       cdn.StatusEncoded,
		Length:       95,
		ThumbnailURL: "thumb.jpg",
	}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := uc.CompleteUpload(context.Background(), "video-1", "creator-1")
	assert.NoError(t, err)
	// Encoded videos enter the moderation queue, not the public catalog
	assert.Equal(t, entity.StatusPending, video.Status)
	assert.Equal(t, 95, video.Duration)
	assert.Equal(t, "thumb.jpg", video.ThumbnailURL)
}

func TestCompleteUpload_StillEncoding(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:         "video-1",
		UserID:     "creator-1",
		CDNVideoID: "guid-1",
		Status:     entity.StatusProcessing,
	}, nil)
	mockCDN.On("GetVideoInfo", mock.Anything, "guid-1").Return(&cdn.VideoInfo{GUID: "guid-1", Status: 3}, nil)

	_, err := uc.CompleteUpload(context.Background(), "video-1", "creator-1")
	assert.ErrorIs(t, err, ErrNotEncoded)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestCompleteUpload_NotOwner(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:     "video-1",
		UserID: "creator-1",
		Status: entity.StatusProcessing,
	}, nil)

	_, err := uc.CompleteUpload(context.Background(), "video-1", "someone-else")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCompleteUpload_AlreadyCompleted(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:     "video-1",
		UserID: "creator-1",
		Status: entity.StatusApproved,
	}, nil)

	video, err := uc.CompleteUpload(context.Background(), "video-1", "creator-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, video.Status)
	mockCDN.AssertNotCalled(t, "GetVideoInfo")
}

func TestGetVideo_HidesUnapproved(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:     "video-1",
		Status: entity.StatusPending,
	}, nil)

	_, err := uc.GetVideo("video-1")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestGetVideo_NotFound(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetVideo("missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestDeleteVideo_Owner(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:         "video-1",
		UserID:     "creator-1",
		CDNVideoID: "guid-1",
	}, nil)
	mockCDN.On("DeleteVideo", mock.Anything, "guid-1").Return(nil)
	mockRepo.On("Delete", "video-1").Return(nil)

	err := uc.DeleteVideo(context.Background(), "video-1", "creator-1", "creator")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCDN.AssertExpectations(t)
}

func TestDeleteVideo_AdminOverride(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:         "video-1",
		UserID:     "creator-1",
		CDNVideoID: "guid-1",
	}, nil)
	mockCDN.On("DeleteVideo", mock.Anything, "guid-1").Return(nil)
	mockRepo.On("Delete", "video-1").Return(nil)

	err := uc.DeleteVideo(context.Background(), "video-1", "admin-1", "admin")
	assert.NoError(t, err)
}

func TestDeleteVideo_NotOwner(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("GetByID", "video-1").Return(&entity.Video{
		ID:     "video-1",
		UserID: "creator-1",
	}, nil)

	err := uc.DeleteVideo(context.Background(), "video-1", "stranger", "viewer")
	assert.ErrorIs(t, err, ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestListVideos_NormalizesLimit(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	mockCDN := new(MockCDNClient)
	uc := NewCatalogUseCase(mockRepo, mockCDN, logger.New())

	mockRepo.On("List", "music", 20, 0).Return([]*entity.Video{}, nil)

	_, err := uc.ListVideos("music", 0, 0)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
