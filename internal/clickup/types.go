package clickup

// TaskStatus is the nested status object on a list task.
type TaskStatus struct {
	Status string `json:"status"`
}

// Task is the subset of a ClickUp task this system reads. The API returns
// start_date and due_date as epoch-millisecond strings, or null when unset.
type Task struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    TaskStatus `json:"status"`
	StartDate string     `json:"start_date"`
	DueDate   string     `json:"due_date"`
	URL       string     `json:"url"`
}

// TaskDraft is a reservation record ready to submit. The store assigns the
// identifier and URL on creation.
type TaskDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   int64  `json:"start_date"`
	DueDate     int64  `json:"due_date"`
	NotifyAll   bool   `json:"notify_all"`
}

// CreatedTask carries the store-assigned identity of a new task. Both fields
// are opaque to this system.
type CreatedTask struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type taskListResponse struct {
	Tasks []Task `json:"tasks"`
}
