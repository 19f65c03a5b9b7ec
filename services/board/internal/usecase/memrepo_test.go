package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/repo/persistent"
)

// memState is an in-memory PostRepository. It does no locking of its own;
// memRepo serializes access and provides transaction rollback.
type memState struct {
	posts  []entity.Post
	nextID uint64
	now    time.Time

	failInsert    error
	failSetStatus error
	countOverride map[entity.PostStatus]int64
	insertCalls   int
}

type memRepo struct {
	mu sync.Mutex
	s  *memState
}

func newMemRepo() *memRepo {
	return &memRepo{s: &memState{
		nextID: 1,
		now:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

// seed inserts a post directly with the given status and creation time.
func (r *memRepo) seed(status entity.PostStatus, createdAt time.Time) entity.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := entity.Post{
		ID:        r.s.nextID,
		Kind:      entity.KindText,
		Content:   "seeded",
		Status:    status,
		CreatedAt: createdAt,
	}
	r.s.nextID++
	r.s.posts = append(r.s.posts, post)
	return post
}

func (r *memRepo) seedN(n int, status entity.PostStatus) {
	for i := 0; i < n; i++ {
		r.mu.Lock()
		r.s.now = r.s.now.Add(time.Second)
		at := r.s.now
		r.mu.Unlock()
		r.seed(status, at)
	}
}

func (r *memRepo) count(status entity.PostStatus) int64 {
	n, _ := r.CountByStatus(context.Background(), status)
	return n
}

func (r *memRepo) get(id uint64) entity.Post {
	post, _ := r.FindByID(context.Background(), id)
	return *post
}

func (r *memRepo) Insert(ctx context.Context, draft entity.Draft, status entity.PostStatus) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Insert(ctx, draft, status)
}

func (r *memRepo) FindByID(ctx context.Context, id uint64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.FindByID(ctx, id)
}

func (r *memRepo) CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.CountByStatus(ctx, status)
}

func (r *memRepo) OldestActive(ctx context.Context) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.OldestActive(ctx)
}

func (r *memRepo) SetStatus(ctx context.Context, id uint64, status entity.PostStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.SetStatus(ctx, id, status)
}

func (r *memRepo) SetPosition(ctx context.Context, id uint64, x, y float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.SetPosition(ctx, id, x, y)
}

func (r *memRepo) ListDisplayable(ctx context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.ListDisplayable(ctx)
}

func (r *memRepo) ListAll(ctx context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.ListAll(ctx)
}

func (r *memRepo) WithinTransaction(ctx context.Context, fn func(repo persistent.PostRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := append([]entity.Post(nil), r.s.posts...)
	nextID := r.s.nextID
	if err := fn(r.s); err != nil {
		r.s.posts = snapshot
		r.s.nextID = nextID
		return err
	}
	return nil
}

func (s *memState) Insert(ctx context.Context, draft entity.Draft, status entity.PostStatus) (*entity.Post, error) {
	s.insertCalls++
	if s.failInsert != nil {
		return nil, s.failInsert
	}
	s.now = s.now.Add(time.Second)
	post := entity.Post{
		ID:        s.nextID,
		Kind:      draft.Kind,
		Content:   draft.Content,
		MediaRef:  draft.MediaRef,
		Caption:   draft.Caption,
		Status:    status,
		CreatedAt: s.now,
	}
	s.nextID++
	s.posts = append(s.posts, post)
	out := post
	return &out, nil
}

func (s *memState) find(id uint64) *entity.Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

func (s *memState) FindByID(ctx context.Context, id uint64) (*entity.Post, error) {
	post := s.find(id)
	if post == nil {
		return nil, persistent.ErrNotFound
	}
	out := *post
	return &out, nil
}

func (s *memState) CountByStatus(ctx context.Context, status entity.PostStatus) (int64, error) {
	if n, ok := s.countOverride[status]; ok {
		return n, nil
	}
	var n int64
	for _, p := range s.posts {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *memState) OldestActive(ctx context.Context) (*entity.Post, error) {
	var oldest *entity.Post
	for i := range s.posts {
		p := &s.posts[i]
		if p.Status != entity.StatusActive {
			continue
		}
		if oldest == nil || p.CreatedAt.Before(oldest.CreatedAt) ||
			(p.CreatedAt.Equal(oldest.CreatedAt) && p.ID < oldest.ID) {
			oldest = p
		}
	}
	if oldest == nil {
		return nil, nil
	}
	out := *oldest
	return &out, nil
}

func (s *memState) SetStatus(ctx context.Context, id uint64, status entity.PostStatus) error {
	if s.failSetStatus != nil {
		return s.failSetStatus
	}
	post := s.find(id)
	if post == nil {
		return persistent.ErrNotFound
	}
	post.Status = status
	return nil
}

func (s *memState) SetPosition(ctx context.Context, id uint64, x, y float64) (int64, error) {
	post := s.find(id)
	if post == nil {
		return 0, persistent.ErrNotFound
	}
	post.Position = &entity.Position{X: x, Y: y}
	return 1, nil
}

func (s *memState) ListDisplayable(ctx context.Context) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range s.posts {
		if p.Status == entity.StatusActive || p.Status == entity.StatusCore {
			post := p
			out = append(out, &post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memState) ListAll(ctx context.Context) ([]*entity.Post, error) {
	out := make([]*entity.Post, len(s.posts))
	for i := range s.posts {
		post := s.posts[i]
		out[i] = &post
	}
	return out, nil
}

func (s *memState) WithinTransaction(ctx context.Context, fn func(repo persistent.PostRepository) error) error {
	return fn(s)
}
