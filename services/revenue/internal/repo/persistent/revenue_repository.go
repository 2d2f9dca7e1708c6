package persistent

import (
	"clipstream/services/revenue/internal/entity"
	"clipstream/services/revenue/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenueRepository interface {
	// AccrueEarnings loads the video under a row lock, recomputes the accrual
	// watermark from stored earnings, and asks calc for a new earning row.
	// calc returning (nil, nil) is a no-op; a non-nil earning is inserted in
	// the same transaction. The lock serializes concurrent reconciliations
	// per video.
	AccrueEarnings(videoID string, calc func(video *entity.Video, countedViews int) (*entity.Earning, error)) (*entity.Earning, error)

	SumEarnings(userID string) (decimal.Decimal, error)
	GetBreakdown(userID string) ([]entity.VideoEarnings, error)
	GetApprovedAccrualStates(userID string) ([]entity.AccrualState, error)

	UserExists(userID string) (bool, error)
	GetLatestApprovedVideo(userID string) (*entity.Video, error)
	CreateEarning(earning *entity.Earning) error
	InsertSimulatedViews(videoID string, views []entity.View) error
	IncrementViews(videoID string, n int) error
	CreateAuditLog(adminID, action, targetType, targetID, reason string) error
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) AccrueEarnings(videoID string, calc func(video *entity.Video, countedViews int) (*entity.Earning, error)) (*entity.Earning, error) {
	var created *entity.Earning

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var videoModel model.VideoModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", videoID).
			First(&videoModel).Error; err != nil {
			return err
		}

		var countedViews int64
		if err := tx.Model(&model.EarningModel{}).
			Where("video_id = ?", videoID).
			Select("COALESCE(SUM(views), 0)").
			Scan(&countedViews).Error; err != nil {
			return err
		}

		earning, err := calc(ToVideoEntity(&videoModel), int(countedViews))
		if err != nil {
			return err
		}
		if earning == nil {
			return nil
		}

		earningModel := ToEarningModel(earning)
		if err := tx.Create(earningModel).Error; err != nil {
			return err
		}

		created = ToEarningEntity(earningModel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *revenueRepository) SumEarnings(userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.EarningModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *revenueRepository) GetBreakdown(userID string) ([]entity.VideoEarnings, error) {
	var rows []struct {
		VideoID       string
		VideoTitle    string
		TotalViews    int
		CountedViews  int
		TotalEarnings decimal.Decimal
	}

	err := r.db.Model(&model.EarningModel{}).
		Select("earnings.video_id AS video_id, videos.title AS video_title, videos.views AS total_views, SUM(earnings.views) AS counted_views, SUM(earnings.amount) AS total_earnings").
		Joins("INNER JOIN videos ON videos.id = earnings.video_id").
		Where("earnings.user_id = ? AND earnings.video_id IS NOT NULL", userID).
		Group("earnings.video_id, videos.title, videos.views").
		Order("total_earnings DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make([]entity.VideoEarnings, len(rows))
	for i, row := range rows {
		breakdown[i] = entity.VideoEarnings{
			VideoID:       row.VideoID,
			VideoTitle:    row.VideoTitle,
			TotalViews:    row.TotalViews,
			CountedViews:  row.CountedViews,
			TotalEarnings: row.TotalEarnings,
		}
	}
	return breakdown, nil
}

func (r *revenueRepository) GetApprovedAccrualStates(userID string) ([]entity.AccrualState, error) {
	var rows []struct {
		VideoID      string
		Views        int
		CountedViews int
	}

	err := r.db.Model(&model.VideoModel{}).
		Select("videos.id AS video_id, videos.views AS views, COALESCE(SUM(earnings.views), 0) AS counted_views").
		Joins("LEFT JOIN earnings ON earnings.video_id = videos.id").
		Where("videos.user_id = ? AND videos.status = ?", userID, "approved").
		Group("videos.id, videos.views").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	states := make([]entity.AccrualState, len(rows))
	for i, row := range rows {
		states[i] = entity.AccrualState{
			VideoID:      row.VideoID,
			Views:        row.Views,
			CountedViews: row.CountedViews,
		}
	}
	return states, nil
}

func (r *revenueRepository) UserExists(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *revenueRepository) GetLatestApprovedVideo(userID string) (*entity.Video, error) {
	var videoModel model.VideoModel
	err := r.db.Where("user_id = ? AND status = ?", userID, "approved").
		Order("created_at DESC").
		First(&videoModel).Error
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *revenueRepository) CreateEarning(earning *entity.Earning) error {
	earningModel := ToEarningModel(earning)
	if err := r.db.Create(earningModel).Error; err != nil {
		return err
	}
	*earning = *ToEarningEntity(earningModel)
	return nil
}

func (r *revenueRepository) InsertSimulatedViews(videoID string, views []entity.View) error {
	const batchSize = 100

	viewModels := make([]model.ViewModel, len(views))
	for i, v := range views {
		viewModels[i] = *ToViewModel(&v)
		viewModels[i].VideoID = videoID
	}

	return r.db.CreateInBatches(viewModels, batchSize).Error
}

func (r *revenueRepository) IncrementViews(videoID string, n int) error {
	return r.db.Model(&model.VideoModel{}).
		Where("id = ?", videoID).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{n}}).Error
}

func (r *revenueRepository) CreateAuditLog(adminID, action, targetType, targetID, reason string) error {
	entry := &model.AuditLogModel{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
	}
	return r.db.Create(entry).Error
}
