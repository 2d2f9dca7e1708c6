package persistent

import (
	"clipstream/services/view/internal/entity"
	"clipstream/services/view/internal/model"
)

func ToViewEntity(m *model.ViewModel) *entity.View {
	if m == nil {
		return nil
	}

	return &entity.View{
		ID:        m.ID,
		VideoID:   m.VideoID,
		UserID:    m.UserID,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
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

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:     m.ID,
		UserID: m.UserID,
		Status: entity.VideoStatus(m.Status),
		Views:  m.Views,
	}
}
