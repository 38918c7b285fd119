package http

import (
	"errors"
	"log"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
)

// Handler exposes the sweepstake service over a JSON API
type Handler struct {
	svc sweepstake.Service
	hub wsHub
}

// wsHub is the subset of the notifier hub the handler needs
type wsHub interface {
	HandleConnection(w nethttp.ResponseWriter, r *nethttp.Request) error
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.SweepstakeService == nil {
		return nil, errors.New("config and sweepstake service cannot be nil")
	}

	h := &Handler{svc: cfg.SweepstakeService}
	if cfg.Hub != nil {
		h.hub = cfg.Hub
	}

	return h, nil
}

// RegisterRoutes registers all the application routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/sweepstakes", h.createSweepstake)
		api.GET("/sweepstakes", h.listSweepstakes)
		api.GET("/sweepstakes/:id", h.getSweepstake)
		api.POST("/sweepstakes/:id/join", h.joinSweepstake)
		api.POST("/sweepstakes/:id/leave", h.leaveSweepstake)
		api.POST("/sweepstakes/:id/cancel", h.cancelSweepstake)
		api.GET("/sweepstakes/:id/audit", h.getAuditReport)

		api.POST("/users", h.createUser)
		api.GET("/users/:id", h.getUser)
	}

	if h.hub != nil {
		router.GET("/ws", h.handleWebsocket)
	}
}

// respondError maps service and storage sentinels onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, store.ErrSweepstakeNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrParticipantNotFound):
		status = nethttp.StatusNotFound
	case errors.Is(err, store.ErrInsufficientBalance):
		status = nethttp.StatusPaymentRequired
	case errors.Is(err, store.ErrAlreadyJoined),
		errors.Is(err, store.ErrSweepstakeFull),
		errors.Is(err, store.ErrAlreadyDrawn),
		errors.Is(err, store.ErrInvalidState),
		errors.Is(err, sweepstake.ErrNotFinished):
		status = nethttp.StatusConflict
	default:
		var svcErr sweepstake.ServiceError
		if errors.As(err, &svcErr) {
			status = nethttp.StatusBadRequest
		} else {
			log.Printf("ERROR: request failed: %v", err)
			status = nethttp.StatusInternalServerError
		}
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}

func (h *Handler) createSweepstake(c *gin.Context) {
	var req createSweepstakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entryFee, err := decimal.NewFromString(req.EntryFee)
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: "invalid entry_fee"})
		return
	}

	var houseFeeRate decimal.Decimal
	if req.HouseFeeRate != "" {
		houseFeeRate, err = decimal.NewFromString(req.HouseFeeRate)
		if err != nil {
			c.JSON(nethttp.StatusBadRequest, errorResponse{Error: "invalid house_fee_rate"})
			return
		}
	}

	out, err := h.svc.CreateSweepstake(c.Request.Context(), &sweepstake.CreateSweepstakeInput{
		Title:           req.Title,
		MaxParticipants: req.MaxParticipants,
		EntryFee:        entryFee,
		HouseFeeRate:    houseFeeRate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusCreated, toSweepstakeResponse(out.Sweepstake))
}

func (h *Handler) listSweepstakes(c *gin.Context) {
	out, err := h.svc.ListSweepstakes(c.Request.Context(), &sweepstake.ListSweepstakesInput{
		Status: models.SweepstakeStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	sweepstakes := make([]sweepstakeResponse, 0, len(out.Sweepstakes))
	for _, s := range out.Sweepstakes {
		sweepstakes = append(sweepstakes, toSweepstakeResponse(s))
	}

	c.JSON(nethttp.StatusOK, gin.H{"sweepstakes": sweepstakes})
}

func (h *Handler) getSweepstake(c *gin.Context) {
	out, err := h.svc.GetSweepstake(c.Request.Context(), &sweepstake.GetSweepstakeInput{
		SweepstakeID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, toSweepstakeResponse(out.Sweepstake))
}

func (h *Handler) joinSweepstake(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, err := h.svc.JoinSweepstake(c.Request.Context(), &sweepstake.JoinSweepstakeInput{
		SweepstakeID: c.Param("id"),
		UserID:       req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, joinResponse{
		Sweepstake:    toSweepstakeResponse(out.Sweepstake),
		ParticipantID: out.ParticipantID,
		CapReached:    out.CapReached,
	})
}

func (h *Handler) leaveSweepstake(c *gin.Context) {
	var req leaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, err := h.svc.LeaveSweepstake(c.Request.Context(), &sweepstake.LeaveSweepstakeInput{
		SweepstakeID: c.Param("id"),
		UserID:       req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, toSweepstakeResponse(out.Sweepstake))
}

func (h *Handler) cancelSweepstake(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if req.Reason == "" {
		req.Reason = "cancelled by operator"
	}

	out, err := h.svc.CancelSweepstake(c.Request.Context(), &sweepstake.CancelSweepstakeInput{
		SweepstakeID: c.Param("id"),
		Reason:       req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, gin.H{
		"sweepstake":     toSweepstakeResponse(out.Sweepstake),
		"refunded_count": out.RefundedCount,
	})
}

// getAuditReport serves the public verification document for a finished
// draw. No authentication: the report contains no private user data.
func (h *Handler) getAuditReport(c *gin.Context) {
	out, err := h.svc.GetAuditReport(c.Request.Context(), &sweepstake.GetAuditReportInput{
		SweepstakeID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, out.Report)
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	openingBalance := decimal.Zero
	if req.OpeningBalance != "" {
		var err error
		openingBalance, err = decimal.NewFromString(req.OpeningBalance)
		if err != nil {
			c.JSON(nethttp.StatusBadRequest, errorResponse{Error: "invalid opening_balance"})
			return
		}
	}

	out, err := h.svc.CreateUser(c.Request.Context(), &sweepstake.CreateUserInput{
		Name:           req.Name,
		OpeningBalance: openingBalance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusCreated, toUserResponse(out.User))
}

func (h *Handler) getUser(c *gin.Context) {
	out, err := h.svc.GetUser(c.Request.Context(), &sweepstake.GetUserInput{
		UserID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(nethttp.StatusOK, userDetailResponse{
		User:         toUserResponse(out.User),
		Transactions: toTransactionResponses(out.Transactions),
	})
}

func (h *Handler) handleWebsocket(c *gin.Context) {
	if err := h.hub.HandleConnection(c.Writer, c.Request); err != nil {
		log.Printf("ERROR: websocket upgrade failed: %v", err)
	}
}
