package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"goal-planner/internal/goal"
	"goal-planner/pkg/response"
)

// Validate godoc
// @Summary     Validate a goal draft
// @Description Extracts fields from free text and checks the draft. The result is valid, incomplete (with the missing fields) or invalid (with a reason); the last two carry concrete suggestions.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body validateReq true "Goal draft"
// @Success     200  {object} validationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     503  {object} response.Resp "Planning assistant unavailable"
// @Router      /api/v1/goals/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Validate(ctx, sc, req.toInput(h.loc))
	if err != nil {
		h.l.Errorf(ctx, "goal/delivery/http.Validate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newValidationResp(res))
}

// Create godoc
// @Summary     Create a goal with its daily schedule
// @Description Validates the draft, plans one item per day around existing schedules, sleep and working hours, and stores the goal. Dates are YYYY-MM-DD, times RFC 3339. progress_percent rises to 100 on the last day; it is a whole number for goals of up to 100 days.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Goal draft and optional preferred slot"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "A goal is already being created"
// @Failure     422  {object} response.Resp "Draft incomplete or invalid; data holds the validation result"
// @Failure     503  {object} response.Resp "Planning assistant unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput(h.loc))
	if err != nil {
		var verr *goal.ValidationError
		if errors.As(err, &verr) {
			response.Error(c, h.mapError(err), newValidationResp(verr.Result))
			return
		}
		h.l.Errorf(ctx, "goal/delivery/http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Stream godoc
// @Summary     Create a goal and stream progress
// @Description Same as Create, reported as server-sent "progress" events: validating, generating (one per day), saving, then done; or incomplete, invalid or failed.
// @Tags        Goal
// @Accept      json
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       body body createReq true "Goal draft and optional preferred slot"
// @Success     200  {object} progressResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "A goal is already being created"
// @Router      /api/v1/goals/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.Start(ctx, sc, req.toInput(h.loc))
	if err != nil {
		h.l.Warnf(ctx, "goal/delivery/http.Stream: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent("progress", h.newProgressResp(ev))
		return !ev.Stage.Terminal()
	})
}

// List godoc
// @Summary     List goals
// @Description Returns the caller's goals, newest first, without schedule items.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "Filter by status (ACTIVE/COMPLETED/ABANDONED)"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "goal/delivery/http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get goal detail
// @Description Returns one goal with its schedule items in day order.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		if !errors.Is(err, goal.ErrGoalNotFound) {
			h.l.Errorf(ctx, "goal/delivery/http.Detail: %v", err)
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
