package persistent

import (
	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		Kind:      entity.PostKind(m.Kind),
		Content:   m.Content,
		MediaRef:  m.MediaRef,
		Caption:   m.Caption,
		Status:    entity.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}

	if m.PositionX != nil && m.PositionY != nil {
		post.Position = &entity.Position{X: *m.PositionX, Y: *m.PositionY}
	}

	return post
}

func ToPostEntities(models []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts
}

// ToPostModel builds the row inserted for draft. ID and CreatedAt are left
// zero for the database to assign.
func ToPostModel(draft entity.Draft, status entity.PostStatus) *model.PostModel {
	return &model.PostModel{
		Kind:     string(draft.Kind),
		Content:  draft.Content,
		MediaRef: draft.MediaRef,
		Caption:  draft.Caption,
		Status:   string(status),
	}
}
