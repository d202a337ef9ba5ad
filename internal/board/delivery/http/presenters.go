package http

import (
	"strings"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
)

// --- Request DTOs ---

type taskReq struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due"`
	Time  string `json:"time"`
	Tag   string `json:"tag"`
	Done  bool   `json:"done"`
	Rank  *int   `json:"rank"`
}

type listReq struct {
	ID       string    `json:"id"       binding:"required"`
	Title    string    `json:"title"`
	SortMode string    `json:"sortMode"`
	Tasks    []taskReq `json:"tasks"`
}

type replaceBoardReq struct {
	Theme string    `json:"theme"`
	Lists []listReq `json:"lists" binding:"dive"`
}

func (r replaceBoardReq) toBoard() model.Board {
	lists := make([]model.List, len(r.Lists))
	for i, l := range r.Lists {
		tasks := make([]model.Task, len(l.Tasks))
		for j, t := range l.Tasks {
			tasks[j] = model.Task(t)
		}
		lists[i] = model.List{
			ID:       l.ID,
			Title:    l.Title,
			SortMode: model.SortMode(l.SortMode),
			Tasks:    tasks,
		}
	}
	return model.Board{Theme: r.Theme, Lists: lists}
}

// ---

type themeReq struct {
	Theme string `json:"theme"`
}

type titleReq struct {
	Title string `json:"title" binding:"required"`
}

// ---

type createTaskReq struct {
	Title string `json:"title" binding:"required"`
	Due   string `json:"due"`
	Time  string `json:"time"`
	Tag   string `json:"tag"`
	Done  bool   `json:"done"`
}

func (r createTaskReq) toInput() board.TaskInput {
	return board.TaskInput{
		Title: r.Title,
		Due:   r.Due,
		Time:  r.Time,
		Tag:   r.Tag,
		Done:  r.Done,
	}
}

type updateTaskReq struct {
	Title *string `json:"title"`
	Due   *string `json:"due"`
	Time  *string `json:"time"`
	Tag   *string `json:"tag"`
	Done  *bool   `json:"done"`
	Rank  *int    `json:"rank"`
}

func (r updateTaskReq) toPatch() board.TaskPatch {
	return board.TaskPatch(r)
}

// ---

type reorderReq struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to"   binding:"required"`
}

type moveReq struct {
	ToListID     string `json:"to_list_id"     binding:"required"`
	TargetTaskID string `json:"target_task_id"`
	Side         string `json:"side"           binding:"omitempty,oneof=top bottom"`
}

func (r moveReq) toInput(fromListID, taskID string) board.MoveInput {
	return board.MoveInput{
		FromListID:   fromListID,
		TaskID:       taskID,
		ToListID:     r.ToListID,
		TargetTaskID: r.TargetTaskID,
		Side:         model.Side(strings.ToLower(r.Side)),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due"`
	Time  string `json:"time"`
	Tag   string `json:"tag"`
	Done  bool   `json:"done"`
	Rank  *int   `json:"rank"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp(t)
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	SortMode string     `json:"sortMode"`
	Tasks    []taskResp `json:"tasks"`
}

func newListResp(l model.List) listResp {
	return listResp{
		ID:       l.ID,
		Title:    l.Title,
		SortMode: string(l.SortMode),
		Tasks:    newTaskResps(l.Tasks),
	}
}

type boardResp struct {
	Theme string     `json:"theme"`
	Lists []listResp `json:"lists"`
}

func (h *handler) newBoardResp(b model.Board) boardResp {
	lists := make([]listResp, len(b.Lists))
	for i, l := range b.Lists {
		lists[i] = newListResp(l)
	}
	return boardResp{Theme: b.Theme, Lists: lists}
}

type themeResp struct {
	Theme string `json:"theme"`
}

type createTaskResp struct {
	ID string `json:"id"`
}

type agendaItemResp struct {
	ListID    string   `json:"list_id"`
	ListTitle string   `json:"list_title"`
	Task      taskResp `json:"task"`
}

type agendaResp struct {
	Date  string           `json:"date,omitempty"`
	Items []agendaItemResp `json:"items"`
}

func (h *handler) newAgendaResp(date string, items []board.AgendaItem) agendaResp {
	out := make([]agendaItemResp, len(items))
	for i, item := range items {
		out[i] = agendaItemResp{
			ListID:    item.ListID,
			ListTitle: item.ListTitle,
			Task:      newTaskResp(item.Task),
		}
	}
	return agendaResp{Date: date, Items: out}
}

type calendarResp struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  map[string][]taskResp `json:"days"`
}

func (h *handler) newCalendarResp(cal board.MonthCalendar) calendarResp {
	days := make(map[string][]taskResp, len(cal.Days))
	for date, tasks := range cal.Days {
		days[date] = newTaskResps(tasks)
	}
	return calendarResp{Year: cal.Year, Month: cal.Month, Days: days}
}
