package persistent

import (
	"clipstream/services/catalog/internal/entity"
	"clipstream/services/catalog/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	List(category string, limit, offset int) ([]*entity.Video, error)
	Search(query string, limit, offset int) ([]*entity.Video, error)
	GetByCreator(creatorID string, limit, offset int) ([]*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) List(category string, limit, offset int) ([]*entity.Video, error) {
	query := r.db.Where("status = ?", string(entity.StatusApproved))
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var videoModels []model.VideoModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&videoModels).Error; err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) Search(query string, limit, offset int) ([]*entity.Video, error) {
	pattern := "%" + query + "%"

	var videoModels []model.VideoModel
	err := r.db.Where("status = ?", string(entity.StatusApproved)).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) GetByCreator(creatorID string, limit, offset int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Where("user_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

// Delete soft-deletes the metadata row. View and earning rows survive: the
// ledger is append-only and already-monetized history must not change.
func (r *videoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.VideoModel{}).Error
}

func toVideoEntities(videoModels []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos
}
