package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"corkboard/pkg/logger"
	"corkboard/pkg/queue"
	"corkboard/services/board/internal/capacity"
	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/repo/persistent"
)

type BoardUseCase interface {
	Submit(ctx context.Context, draft entity.Draft) (*entity.SubmissionResult, error)
	Resolve(ctx context.Context, req entity.ResolutionRequest) (*entity.Post, error)
	SetPosition(ctx context.Context, id uint64, x, y interface{}) error
	GetPost(ctx context.Context, id uint64) (*entity.Post, error)
	ListDisplayable(ctx context.Context) ([]*entity.Post, error)
	ListArchive(ctx context.Context) ([]*entity.Post, error)
}

// EventPublisher receives lifecycle events after their writes commit.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.Event) error
}

type boardUseCase struct {
	postRepo  persistent.PostRepository
	limits    capacity.Limits
	publisher EventPublisher
	logger    *logger.Logger
}

// NewBoardUseCase wires the lifecycle controller. publisher may be nil.
func NewBoardUseCase(
	postRepo persistent.PostRepository,
	limits capacity.Limits,
	publisher EventPublisher,
	logger *logger.Logger,
) BoardUseCase {
	return &boardUseCase{
		postRepo:  postRepo,
		limits:    limits,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit admits draft as an active post when the tier has room. Otherwise it
// returns the oldest active post alongside the draft and writes nothing. The
// count check and the insert share one serialized transaction.
func (uc *boardUseCase) Submit(ctx context.Context, draft entity.Draft) (*entity.SubmissionResult, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var result *entity.SubmissionResult
	err := uc.postRepo.WithinTransaction(ctx, func(repo persistent.PostRepository) error {
		activeCount, err := repo.CountByStatus(ctx, entity.StatusActive)
		if err != nil {
			return err
		}

		if uc.limits.CanAdmit(activeCount) {
			post, err := repo.Insert(ctx, draft, entity.StatusActive)
			if err != nil {
				return err
			}
			result = &entity.SubmissionResult{Outcome: entity.OutcomeCommitted, Post: post}
			return nil
		}

		oldest, err := repo.OldestActive(ctx)
		if err != nil {
			return err
		}
		if oldest == nil {
			uc.logger.Warn("Active tier reports %d posts but none is active, returning draft unresolved", activeCount)
			result = &entity.SubmissionResult{Outcome: entity.OutcomeNoActionablePost, Draft: &draft}
			return nil
		}

		result = &entity.SubmissionResult{Outcome: entity.OutcomePendingDecision, Oldest: oldest, Draft: &draft}
		return nil
	})
	if err != nil {
		submissionsTotal.WithLabelValues("error").Inc()
		uc.logger.Error("Failed to submit post: %v", err)
		return nil, storageError("submit", err)
	}

	submissionsTotal.WithLabelValues(string(result.Outcome)).Inc()
	if result.Outcome == entity.OutcomeCommitted {
		uc.afterWrite(ctx, "post.committed", result.Post)
	}
	return result, nil
}

// Resolve applies a caller's answer to a pending decision.
func (uc *boardUseCase) Resolve(ctx context.Context, req entity.ResolutionRequest) (*entity.Post, error) {
	post, err := uc.resolve(ctx, req)
	action := string(req.Action)
	if !req.Action.Valid() {
		action = "unknown"
	}
	resolutionsTotal.WithLabelValues(action, resultLabel(err)).Inc()
	if err != nil {
		if errors.Is(err, ErrStorage) {
			uc.logger.Error("Failed to resolve %s for post %d: %v", req.Action, req.OldestPostID, err)
		}
		return nil, err
	}
	return post, nil
}

func (uc *boardUseCase) resolve(ctx context.Context, req entity.ResolutionRequest) (*entity.Post, error) {
	if !req.Action.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	draft := req.Draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.Action == entity.ActionAddDirectly {
		var post *entity.Post
		err := uc.postRepo.WithinTransaction(ctx, func(repo persistent.PostRepository) error {
			var err error
			post, err = repo.Insert(ctx, draft, entity.StatusActive)
			return err
		})
		if err != nil {
			return nil, storageError("add directly", err)
		}
		uc.afterWrite(ctx, "post.committed", post)
		return post, nil
	}

	if req.OldestPostID == 0 {
		return nil, fmt.Errorf("%w: oldest_post_id is required for %s", ErrInvalidInput, req.Action)
	}

	target := entity.StatusDeleted
	eventType := "post.retired"
	if req.Action == entity.ActionMoveToCore {
		target = entity.StatusCore
		eventType = "post.promoted"
	}

	var retired, post *entity.Post
	err := uc.postRepo.WithinTransaction(ctx, func(repo persistent.PostRepository) error {
		oldest, err := repo.FindByID(ctx, req.OldestPostID)
		if errors.Is(err, persistent.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrNotFound, req.OldestPostID)
		}
		if err != nil {
			return err
		}
		// only an active post frees a slot in the active tier
		if oldest.Status != entity.StatusActive || !oldest.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: post %d is %s", ErrInvalidTransition, oldest.ID, oldest.Status)
		}

		if target == entity.StatusCore {
			coreCount, err := repo.CountByStatus(ctx, entity.StatusCore)
			if err != nil {
				return err
			}
			if !uc.limits.CanPromoteToCore(coreCount) {
				return fmt.Errorf("%w: %d of %d", ErrCoreFull, coreCount, uc.limits.MaxCore)
			}
		}

		if err := repo.SetStatus(ctx, oldest.ID, target); err != nil {
			return err
		}
		oldest.Status = target
		retired = oldest

		post, err = repo.Insert(ctx, draft, entity.StatusActive)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReplacementFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, storageError(string(req.Action), err)
	}

	uc.afterWrite(ctx, eventType, retired)
	uc.afterWrite(ctx, "post.committed", post)
	return post, nil
}

// SetPosition validates both coordinates before touching storage.
func (uc *boardUseCase) SetPosition(ctx context.Context, id uint64, x, y interface{}) error {
	if id == 0 {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	px, err := parseCoordinate(x)
	if err != nil {
		return fmt.Errorf("%w: x: %w", ErrInvalidCoordinate, err)
	}
	py, err := parseCoordinate(y)
	if err != nil {
		return fmt.Errorf("%w: y: %w", ErrInvalidCoordinate, err)
	}

	if _, err := uc.postRepo.SetPosition(ctx, id, px, py); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return storageError("set position", err)
	}
	return nil
}

func (uc *boardUseCase) GetPost(ctx context.Context, id uint64) (*entity.Post, error) {
	post, err := uc.postRepo.FindByID(ctx, id)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, storageError("get post", err)
	}
	return post, nil
}

func (uc *boardUseCase) ListDisplayable(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListDisplayable(ctx)
	if err != nil {
		return nil, storageError("list displayable", err)
	}
	return posts, nil
}

func (uc *boardUseCase) ListArchive(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		return nil, storageError("list archive", err)
	}
	return posts, nil
}

// afterWrite publishes the event for post and refreshes the tier gauges.
// Neither step can fail the request; the write has already committed.
func (uc *boardUseCase) afterWrite(ctx context.Context, eventType string, post *entity.Post) {
	if uc.publisher != nil {
		event := queue.Event{
			Type:       eventType,
			PostID:     post.ID,
			Status:     string(post.Status),
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Warn("Failed to publish %s for post %d: %v", eventType, post.ID, err)
		}
	}

	for _, status := range []entity.PostStatus{entity.StatusActive, entity.StatusCore} {
		count, err := uc.postRepo.CountByStatus(ctx, status)
		if err != nil {
			uc.logger.Warn("Failed to refresh %s gauge: %v", status, err)
			continue
		}
		postsByStatus.WithLabelValues(string(status)).Set(float64(count))
	}
}

func parseCoordinate(v interface{}) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	case nil:
		return 0, errors.New("missing value")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not finite", f)
	}
	return f, nil
}
