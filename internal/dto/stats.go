package dto

// StatsResponse is the dashboard summary for the current user.
type StatsResponse struct {
	Projects       int64 `json:"projects"`
	ActiveProjects int64 `json:"active_projects"`
	Credentials    int64 `json:"credentials"`
	Notes          int64 `json:"notes"`
	MediaFiles     int64 `json:"media_files"`
	Todos          int64 `json:"todos"`
	ActiveTodos    int64 `json:"active_todos"`
	CompletedTodos int64 `json:"completed_todos"`
	DueSoonTodos   int64 `json:"due_soon_todos"`
}
