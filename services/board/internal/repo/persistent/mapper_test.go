package persistent

import (
	"testing"
	"time"

	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPostEntity(t *testing.T) {
	x, y := 12.5, -3.0
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := &model.PostModel{
		ID:        9,
		Kind:      "image",
		MediaRef:  "https://cdn/p.png",
		Caption:   "sunset",
		Status:    "core",
		PositionX: &x,
		PositionY: &y,
		CreatedAt: created,
	}

	post := ToPostEntity(m)
	require.NotNil(t, post)
	assert.Equal(t, uint64(9), post.ID)
	assert.Equal(t, entity.KindImage, post.Kind)
	assert.Equal(t, "https://cdn/p.png", post.MediaRef)
	assert.Equal(t, entity.StatusCore, post.Status)
	assert.Equal(t, &entity.Position{X: 12.5, Y: -3}, post.Position)
	assert.Equal(t, created, post.CreatedAt)
}

func TestToPostEntity_PartialPositionIsAbsent(t *testing.T) {
	x := 1.0
	post := ToPostEntity(&model.PostModel{ID: 1, Kind: "text", Content: "hi", Status: "active", PositionX: &x})
	assert.Nil(t, post.Position)
}

func TestToPostEntity_Nil(t *testing.T) {
	assert.Nil(t, ToPostEntity(nil))
}

func TestToPostModel(t *testing.T) {
	m := ToPostModel(entity.Draft{Kind: entity.KindText, Content: "hello", Caption: "c"}, entity.StatusActive)
	assert.Zero(t, m.ID)
	assert.True(t, m.CreatedAt.IsZero())
	assert.Equal(t, "text", m.Kind)
	assert.Equal(t, "hello", m.Content)
	assert.Equal(t, "c", m.Caption)
	assert.Equal(t, "active", m.Status)
	assert.Nil(t, m.PositionX)
}
