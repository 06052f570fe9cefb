package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/middleware"
	"smart-task-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a task from natural language
// @Description Analyzes the raw text (priority, due date, duration, category) and persists the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Acting user (default: default)"
// @Param       body      body   createReq true  "Raw task text"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateFromText(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, optionally filtered by a title substring.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: default)"
// @Param       q         query  string false "Title substring filter"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.Query != "" {
		found, sErr := h.uc.Search(ctx, sc, req.Query)
		if sErr != nil {
			h.l.Errorf(ctx, "uc.Search: %v", sErr)
			h.respondError(c, sErr)
			return
		}
		response.OK(c, h.newListResp(found))
		return
	}

	all, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(all))
}

// Dispatch godoc
// @Summary     Dispatch a voice or text command
// @Description Classifies the text into a command (add/search/show/complete/delete) and executes it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      false "Acting user (default: default)"
// @Param       body      body   dispatchReq true  "Command text"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No matching task"
// @Router      /api/v1/tasks/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processDispatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Dispatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dispatch: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDispatchResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task as done and records the completion time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: default)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} createResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [PUT]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	completed, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(completed))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task permanently.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: default)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": id})
}

// Suggestions godoc
// @Summary     Suggest task titles
// @Description Returns up to 3 task title suggestions for the current moment.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/insights/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	response.OK(c, suggestionsResp{Suggestions: h.uc.Suggestions(ctx, sc)})
}

// Productivity godoc
// @Summary     Productivity analysis
// @Description Scores the user's completion history and names their best time of day.
// @Tags        Insights
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: default)"
// @Success     200 {object} productivityResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/productivity [GET]
func (h *handler) Productivity(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.Productivity(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Productivity: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProductivityResp(output))
}
