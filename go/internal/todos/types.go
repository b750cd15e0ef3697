package todos

import "encoding/json"

// TodoRequest carries the fields accepted when creating or updating a todo.
// Deadline may be a date string or a millisecond epoch number.
type TodoRequest struct {
	Title    string          `json:"title"`
	Deadline json.RawMessage `json:"deadline"`
}
