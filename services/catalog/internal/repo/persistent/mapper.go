package persistent

import (
	"clipstream/services/catalog/internal/entity"
	"clipstream/services/catalog/internal/model"
)

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		CDNVideoID:   m.CDNVideoID,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Status:       entity.VideoStatus(m.Status),
		Views:        m.Views,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		CDNVideoID:   e.CDNVideoID,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		Status:       string(e.Status),
		Views:        e.Views,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
