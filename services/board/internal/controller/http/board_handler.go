package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"corkboard/pkg/logger"
	"corkboard/pkg/s3"
	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MediaStore keeps uploaded image bytes. The board only sees the returned
// reference.
type MediaStore interface {
	UploadFile(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type BoardHandler struct {
	boardUseCase usecase.BoardUseCase
	media        MediaStore
	logger       *logger.Logger
}

func NewBoardHandler(boardUseCase usecase.BoardUseCase, media MediaStore, logger *logger.Logger) *BoardHandler {
	return &BoardHandler{
		boardUseCase: boardUseCase,
		media:        media,
		logger:       logger,
	}
}

type CreatePostRequest struct {
	Content string `form:"content"`
	Caption string `form:"caption"`
}

type ResolveRequest struct {
	Action       string       `json:"action" binding:"required"`
	OldestPostID uint64       `json:"oldest_post_id"`
	Draft        entity.Draft `json:"draft"`
}

// archiveEntry is the reduced projection served by the archive view.
type archiveEntry struct {
	ID        uint64            `json:"id"`
	Kind      entity.PostKind   `json:"kind"`
	Content   string            `json:"content,omitempty"`
	MediaRef  string            `json:"media_ref,omitempty"`
	Caption   string            `json:"caption,omitempty"`
	Status    entity.PostStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func toArchiveEntry(post *entity.Post) archiveEntry {
	entry := archiveEntry{
		ID:        post.ID,
		Kind:      post.Kind,
		Caption:   post.Caption,
		Status:    post.Status,
		CreatedAt: post.CreatedAt,
	}
	if post.Status != entity.StatusDeleted {
		entry.Content = post.Content
		entry.MediaRef = post.MediaRef
	}
	return entry
}

// CreatePost godoc
// @Summary      Submit a post
// @Description  Submit a text post, or an image post by attaching an image file. When the active tier is full nothing is stored and a pending decision is returned.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        content formData string false "Text body (text posts only)"
// @Param        caption formData string false "Caption"
// @Param        image formData file false "Image file"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  entity.SubmissionResult
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *BoardHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := entity.Draft{Kind: entity.KindText, Content: req.Content, Caption: req.Caption}

	var uploadedKey string
	file, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	default:
		if strings.TrimSpace(req.Content) != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An image post cannot carry text content"})
			return
		}
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attached file must be an image"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}
		defer src.Close()

		uploadedKey = s3.ObjectKey(file.Filename)
		mediaRef, err := h.media.UploadFile(c.Request.Context(), uploadedKey, src, contentType)
		if err != nil {
			h.logger.Error("Failed to upload image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		draft = entity.Draft{Kind: entity.KindImage, MediaRef: mediaRef, Caption: req.Caption}
	}

	result, err := h.boardUseCase.Submit(c.Request.Context(), draft)
	if err != nil {
		if uploadedKey != "" {
			if delErr := h.media.DeleteFile(c.Request.Context(), uploadedKey); delErr != nil {
				h.logger.Warn("Failed to remove orphaned image %s: %v", uploadedKey, delErr)
			}
		}
		h.respondError(c, err)
		return
	}

	if result.Outcome == entity.OutcomeCommitted {
		c.JSON(http.StatusCreated, result.Post)
		return
	}
	c.JSON(http.StatusConflict, result)
}

// ResolvePost godoc
// @Summary      Resolve a pending decision
// @Description  Apply deleteOldest, moveToCore or addDirectly to a submission that hit the active-tier ceiling.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body ResolveRequest true "Resolution"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/resolve [post]
func (h *BoardHandler) ResolvePost(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.boardUseCase.Resolve(c.Request.Context(), entity.ResolutionRequest{
		Action:       entity.ResolutionAction(req.Action),
		OldestPostID: req.OldestPostID,
		Draft:        req.Draft,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePosition godoc
// @Summary      Move a post
// @Description  Set the display coordinates of a post. Both x and y must be numbers.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body object true "Coordinates" SchemaExample({"x":120,"y":48.5})
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/position [put]
func (h *BoardHandler) UpdatePosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		X interface{} `json:"x"`
		Y interface{} `json:"y"`
	}
	// Decoded without gin binding so x and y reach the usecase as raw JSON
	// values (json.Number, string, bool...) and are validated there.
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := h.boardUseCase.SetPosition(c.Request.Context(), id, req.X, req.Y); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Position updated", "id": id})
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *BoardHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.boardUseCase.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List board posts
// @Description  Active and core posts, oldest first.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *BoardHandler) ListPosts(c *gin.Context) {
	posts, err := h.boardUseCase.ListDisplayable(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// ListArchive godoc
// @Summary      List every post
// @Description  All posts in insertion order. Deleted posts omit their content and media.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/archive [get]
func (h *BoardHandler) ListArchive(c *gin.Context) {
	posts, err := h.boardUseCase.ListArchive(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries := make([]archiveEntry, len(posts))
	for i, post := range posts {
		entries[i] = toArchiveEntry(post)
	}

	c.JSON(http.StatusOK, gin.H{"posts": entries, "count": len(entries)})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return 0, false
	}
	return id, true
}

func (h *BoardHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrCoreFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Core tier is full"})
	case errors.Is(err, usecase.ErrReplacementFailed):
		h.logger.Error("Replacement insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store replacement post", "stage": "replacement_insert"})
	default:
		h.logger.Error("Board request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
