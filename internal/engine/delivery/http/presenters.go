package http

import (
	"time"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/pkg/clock"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
	// Now overrides the reference time, RFC3339. Defaults to the wall clock.
	Now string `json:"now,omitempty"`
}

func (r analyzeReq) referenceTime(clk clock.Clock) (time.Time, error) {
	return parseReferenceTime(r.Now, clk.Now())
}

type classifyReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

// --- Response DTOs ---

type analyzeResp struct {
	Priority          string     `json:"priority"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	EstimatedDuration int        `json:"estimated_duration"`
	Category          string     `json:"category"`
}

func newAnalyzeResp(a engine.TaskAnalysis) analyzeResp {
	return analyzeResp{
		Priority:          string(a.Priority),
		DueDate:           a.DueDate,
		EstimatedDuration: a.EstimatedDuration,
		Category:          string(a.Category),
	}
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

type classifyResp struct {
	CommandType string `json:"command_type"`
	Payload     string `json:"payload,omitempty"`
	Reply       string `json:"reply"`
}

func newClassifyResp(cmd engine.Command) classifyResp {
	resp := classifyResp{
		CommandType: string(cmd.Type()),
		Reply:       engine.ConfirmationPhrase(cmd.Type()),
	}
	switch c := cmd.(type) {
	case engine.AddTaskCommand:
		resp.Payload = c.Text
	case engine.SearchCommand:
		resp.Payload = c.Query
	case engine.CompleteTaskCommand:
		resp.Payload = c.Text
	case engine.DeleteTaskCommand:
		resp.Payload = c.Text
	case engine.UnknownCommand:
		resp.Payload = c.Text
	}
	return resp
}
