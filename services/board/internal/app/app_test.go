package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"corkboard/pkg/config"
	"corkboard/pkg/logger"
	"corkboard/services/board/internal/capacity"
	boardHTTP "corkboard/services/board/internal/controller/http"
	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/repo/persistent"
	"corkboard/services/board/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// emptyRepo serves an empty board.
type emptyRepo struct {
	persistent.PostRepository
}

func (emptyRepo) ListDisplayable(ctx context.Context) ([]*entity.Post, error) {
	return []*entity.Post{}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New()
	uc := usecase.NewBoardUseCase(emptyRepo{}, capacity.DefaultLimits(), nil, log)
	handler := boardHTTP.NewBoardHandler(uc, nil, log)
	return NewRouter(&config.Config{RateLimitPerMinute: 60}, log, handler, nil)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_ListPosts(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[],"count":0}`, w.Body.String())
}
