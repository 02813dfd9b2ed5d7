package request

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
	"go-workflow/internal/shared/apperror"
	"go-workflow/internal/shared/response"
)

const idempotencyCacheTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

// caller rebuilds the authz identity from the values the auth and role
// middlewares placed in the gin context.
func caller(c *gin.Context) authz.Caller {
	return authz.Caller{
		ID:   c.GetString("user_id"),
		Role: domain.AppRole(c.GetString("role")),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	h.releaseIdempotencyLock(c)

	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request operation failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create request validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.settleIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var filter ListRequestsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", err.Error())
		return
	}

	resp, meta, err := h.service.List(c.Request.Context(), caller(c), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Timeline(c *gin.Context) {
	resp, err := h.service.Timeline(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	h.transition(c, domain.StatusPendingApproval, false)
}

func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, domain.StatusApproved, false)
}

// Reject requires notes: an unexplained rejection is useless to the
// requester.
func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, domain.StatusRejected, true)
}

func (h *Handler) Start(c *gin.Context) {
	h.transition(c, domain.StatusInProgress, false)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted, false)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled, false)
}

func (h *Handler) transition(c *gin.Context, target domain.RequestStatus, notesRequired bool) {
	var notes string
	if notesRequired {
		var req RejectRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
			return
		}
		notes = req.Notes
	} else if c.Request.ContentLength > 0 {
		var req TransitionRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
			return
		}
		notes = req.Notes
	}

	resp, err := h.service.Transition(c.Request.Context(), caller(c), c.Param("id"), target, notes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.settleIdempotency(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetPriority(c *gin.Context) {
	var req SetPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.SetPriority(c.Request.Context(), caller(c), c.Param("id"), req.Priority)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), caller(c), c.Param("id"), req.AssignedTo)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// settleIdempotency fills the replay cache and releases the in-flight lock
// placed by the idempotency middleware. A cache failure is logged, not
// surfaced: the write already committed.
func (h *Handler) settleIdempotency(c *gin.Context, resp RequestResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("marshal idempotency cache failed", zap.Error(err))
		return
	}
	if err := h.rdb.Set(c.Request.Context(), cacheKey, body, idempotencyCacheTTL).Err(); err != nil {
		h.logger.Error("store idempotency cache failed", zap.Error(err))
	}
	h.releaseIdempotencyLock(c)
}

// releaseIdempotencyLock frees the in-flight lock when the write finished,
// failed included, so a retry is not stuck behind PROCESSING until the lock
// TTL lapses.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	lockKey := c.GetString("idempotency_lock_key")
	if lockKey == "" || h.rdb == nil {
		return
	}
	if err := h.rdb.Del(c.Request.Context(), lockKey).Err(); err != nil {
		h.logger.Error("release idempotency lock failed", zap.Error(err))
	}
}
