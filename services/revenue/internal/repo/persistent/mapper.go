package persistent

import (
	"clipstream/services/revenue/internal/entity"
	"clipstream/services/revenue/internal/model"
)

func ToEarningEntity(m *model.EarningModel) *entity.Earning {
	if m == nil {
		return nil
	}

	return &entity.Earning{
		ID:        m.ID,
		UserID:    m.UserID,
		VideoID:   m.VideoID,
		Amount:    m.Amount,
		Views:     m.Views,
		Status:    entity.EarningStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func ToEarningModel(e *entity.Earning) *model.EarningModel {
	if e == nil {
		return nil
	}

	return &model.EarningModel{
		ID:        e.ID,
		UserID:    e.UserID,
		VideoID:   e.VideoID,
		Amount:    e.Amount,
		Views:     e.Views,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Status:    entity.VideoStatus(m.Status),
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
	}
}

func ToViewModel(e *entity.View) *model.ViewModel {
	if e == nil {
		return nil
	}

	return &model.ViewModel{
		ID:        e.ID,
		VideoID:   e.VideoID,
		UserID:    e.UserID,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt,
	}
}
