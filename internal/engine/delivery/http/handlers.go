package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/pkg/response"
)

// Analyze godoc
// @Summary     Analyze task text
// @Description Extracts priority, due date, estimated duration and category from raw text.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Text to analyze, optional reference time (RFC3339)"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/engine/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	now, err := req.referenceTime(h.clk)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	analysis := h.uc.Analyze(ctx, req.Text, now)
	response.OK(c, newAnalyzeResp(analysis))
}

// Classify godoc
// @Summary     Classify command text
// @Description Maps raw text to a typed command with its extracted payload.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/engine/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd := h.uc.Classify(ctx, req.Text)
	response.OK(c, newClassifyResp(cmd))
}

// Suggestions godoc
// @Summary     Suggest task titles
// @Description Returns up to 3 candidate task titles for the given moment.
// @Tags        Engine
// @Produce     json
// @Param       now query string false "Reference time override (RFC3339)"
// @Success     200 {object} suggestionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/engine/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	now, err := parseReferenceTime(c.Query("now"), h.clk.Now())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, suggestionsResp{Suggestions: h.uc.SuggestTitles(ctx, now)})
}

// parseReferenceTime parses the optional RFC3339 override, falling back to
// the injected clock.
func parseReferenceTime(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, raw)
}
