package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/service"
	"github.com/gogotex/gogotex/backend/go-comments/pkg/metrics"
	"github.com/gogotex/gogotex/backend/go-comments/pkg/middleware"
	"go.uber.org/zap"
)

// Response messages. Store failures never reveal their cause to callers.
const (
	msgFetchFailed  = "Failed to fetch comments"
	msgDeleteFailed = "Failed to delete comment"
	msgInvalidID    = "Invalid commentId"
	msgDeleted      = "Comment deleted successfully"
)

// Handler serves the comments resource.
type Handler struct {
	svc service.Service
	log *zap.Logger
}

func New(svc service.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// Register mounts the routes on rg; callers pass the /api/comments group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/", h.List)
	rg.DELETE("/:commentId", h.Delete)
}

// RegisterCommentRoutes mounts the handler under /api/comments.
func RegisterCommentRoutes(r *gin.Engine, svc service.Service, log *zap.Logger) {
	New(svc, log).Register(r.Group("/api/comments"))
}

// List returns every comment as a JSON array.
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.storeFailure(c, "list", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFetchFailed})
		return
	}
	metrics.CommentOperations.WithLabelValues("list", metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, list)
}

// Delete removes the comment named by :commentId. A well-formed id that
// matches nothing still reports success.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("commentId")
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, comment.ErrInvalidID) {
			metrics.CommentOperations.WithLabelValues("delete", metrics.OutcomeInvalid).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
			return
		}
		h.storeFailure(c, "delete", err, zap.String("comment_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
		return
	}

	outcome := metrics.OutcomeOK
	if !removed {
		outcome = metrics.OutcomeMissing
		h.log.Debug("delete matched no comment",
			zap.String("comment_id", id),
			zap.String("request_id", middleware.RequestIDFromContext(c)),
		)
	}
	metrics.CommentOperations.WithLabelValues("delete", outcome).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

func (h *Handler) storeFailure(c *gin.Context, op string, err error, fields ...zap.Field) {
	metrics.CommentOperations.WithLabelValues(op, metrics.OutcomeError).Inc()
	_ = c.Error(err)
	fields = append(fields,
		zap.String("operation", op),
		zap.String("request_id", middleware.RequestIDFromContext(c)),
		zap.Error(err),
	)
	h.log.Error("comment store failure", fields...)
}
