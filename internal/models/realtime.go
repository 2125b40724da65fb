package models

// ThreadEvent is published on the shared bus whenever a complaint's thread
// changes: a new comment or a status overwrite. Subscribers react by
// re-reading the thread, so the event carries no payload beyond the cause.
type ThreadEvent struct {
	ComplaintID string `json:"complaint_id"`
	Kind        string `json:"kind"` // "comment" or "status"
}

// ThreadUpdate is what the hub delivers to every live subscriber of a
// complaint: the current status plus the full ordered thread.
type ThreadUpdate struct {
	ComplaintID string    `json:"complaint_id"`
	Status      string    `json:"status"`
	Comments    []Comment `json:"comments"`
}
