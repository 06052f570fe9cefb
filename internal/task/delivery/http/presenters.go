package http

import (
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r createReq) toInput() task.CreateFromTextInput {
	return task.CreateFromTextInput{Text: r.Text}
}

type dispatchReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r dispatchReq) toInput() task.DispatchInput {
	return task.DispatchInput{Text: r.Text}
}

type listReq struct {
	Query string `form:"q"`
}

// --- Response DTOs ---

type taskResp struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Priority          string     `json:"priority"`
	Category          string     `json:"category"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	EstimatedDuration int        `json:"estimated_duration"`
	Done              bool       `json:"done"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CalendarLink      string     `json:"calendar_link,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          string(t.Priority),
		Category:          string(t.Category),
		DueDate:           t.DueDate,
		EstimatedDuration: t.EstimatedDuration,
		Done:              t.Done,
		CompletedAt:       t.CompletedAt,
		CalendarLink:      t.CalendarLink,
		CreatedAt:         t.CreatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(t model.Task) createResp {
	return createResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Total: len(items)}
}

type dispatchResp struct {
	CommandType string     `json:"command_type"`
	Reply       string     `json:"reply"`
	Task        *taskResp  `json:"task,omitempty"`
	Tasks       []taskResp `json:"tasks,omitempty"`
}

func (h *handler) newDispatchResp(out task.DispatchOutput) dispatchResp {
	resp := dispatchResp{
		CommandType: string(out.CommandType),
		Reply:       out.Reply,
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	if out.Tasks != nil {
		items := make([]taskResp, len(out.Tasks))
		for i, t := range out.Tasks {
			items[i] = newTaskResp(t)
		}
		resp.Tasks = items
	}
	return resp
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

type productivityResp struct {
	Score          int      `json:"score"`
	BestTimeOfDay  string   `json:"best_time_of_day"`
	Suggestions    []string `json:"suggestions"`
	CompletedTotal int      `json:"completed_total"`
}

func (h *handler) newProductivityResp(out task.ProductivityOutput) productivityResp {
	return productivityResp{
		Score:          out.Analysis.Score,
		BestTimeOfDay:  string(out.Analysis.BestTimeOfDay),
		Suggestions:    out.Analysis.Suggestions,
		CompletedTotal: out.CompletedTotal,
	}
}
