package persistent

import (
	"time"

	"clipstream/services/view/internal/entity"
	"clipstream/services/view/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ViewRepository interface {
	GetVideo(videoID string) (*entity.Video, error)
	HasRecentView(videoID, ipAddress string, since time.Time) (bool, error)
	CreateViewAndIncrement(view *entity.View) error
	GetViewCount(videoID string) (int64, error)
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) GetVideo(videoID string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", videoID).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *viewRepository) HasRecentView(videoID, ipAddress string, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.ViewModel{}).
		Where("video_id = ? AND ip_address = ? AND created_at >= ?", videoID, ipAddress, since).
		Count(&count).Error
	return count > 0, err
}

// CreateViewAndIncrement appends the ledger row and bumps the denormalized
// counter in one transaction. The increment is a SQL expression, so two
// concurrent admits for the same video both land.
func (r *viewRepository) CreateViewAndIncrement(view *entity.View) error {
	viewModel := ToViewModel(view)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(viewModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.VideoModel{}).
			Where("id = ?", view.VideoID).
			UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error; err != nil {
			return err
		}

		*view = *ToViewEntity(viewModel)
		return nil
	})
}

func (r *viewRepository) GetViewCount(videoID string) (int64, error) {
	var videoModel model.VideoModel
	if err := r.db.Select("views").Where("id = ?", videoID).First(&videoModel).Error; err != nil {
		return 0, err
	}
	return int64(videoModel.Views), nil
}
