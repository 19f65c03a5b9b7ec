package persistent

import (
	"context"
	"errors"
	"fmt"

	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("post not found")

// boardLockKey identifies the transaction-scoped advisory lock that
// serializes capacity checks with the writes that depend on them.
const boardLockKey int64 = 0x636f726b

type PostRepository interface {
	Insert(ctx context.Context, draft entity.Draft, status entity.PostStatus) (*entity.Post, error)
	FindByID(ctx context.Context, id uint64) (*entity.Post, error)
	CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error)
	OldestActive(ctx context.Context) (*entity.Post, error)
	SetStatus(ctx context.Context, id uint64, status entity.PostStatus) error
	SetPosition(ctx context.Context, id uint64, x, y float64) (int64, error)
	ListDisplayable(ctx context.Context) ([]*entity.Post, error)
	ListAll(ctx context.Context) ([]*entity.Post, error)
	// WithinTransaction runs fn against a repository bound to one
	// transaction. Calls are serialized with every other WithinTransaction
	// caller; fn returning an error rolls the transaction back.
	WithinTransaction(ctx context.Context, fn func(repo PostRepository) error) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Insert(ctx context.Context, draft entity.Draft, status entity.PostStatus) (*entity.Post, error) {
	postModel := ToPostModel(draft, status)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(postModel), nil
}

func (r *postRepository) FindByID(ctx context.Context, id uint64) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

// OldestActive returns nil, nil when no post is active.
func (r *postRepository) OldestActive(ctx context.Context) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.StatusActive)).
		Order("created_at ASC").
		Order("id ASC").
		Take(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) SetStatus(ctx context.Context, id uint64, status entity.PostStatus) error {
	result := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) SetPosition(ctx context.Context, id uint64, x, y float64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"position_x": x,
		"position_y": y,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return result.RowsAffected, nil
}

func (r *postRepository) ListDisplayable(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(entity.StatusActive), string(entity.StatusCore)}).
		Order("created_at ASC").
		Order("id ASC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntities(postModels), nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&postModels).Error; err != nil {
		return nil, err
	}
	return ToPostEntities(postModels), nil
}

func (r *postRepository) WithinTransaction(ctx context.Context, fn func(repo PostRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", boardLockKey).Error; err != nil {
			return fmt.Errorf("failed to acquire board lock: %w", err)
		}
		return fn(&postRepository{db: tx})
	})
}
