package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/internal/middleware"
	"goal-planner/internal/model"
	pkgErrors "goal-planner/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processValidateReq binds and validates the validate request body.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, model.Scope, error) {
	var req validateReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processCreateReq binds and validates the create/stream request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}
