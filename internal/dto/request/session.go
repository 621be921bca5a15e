package request

type CreateSessionRequest struct {
	HallID      string `json:"hall_id" validate:"required,uuid"`
	TicketPrice int    `json:"ticket_price" validate:"required,gte=1"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
}

// UpdateSessionRequest is a patch; absent fields keep their current values.
type UpdateSessionRequest struct {
	TicketPrice *int    `json:"ticket_price" validate:"omitempty,gte=1"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

// ListSessionsRequest carries the query-string filters of the listing and
// info endpoints. Filtration defaults to today when nothing is given.
type ListSessionsRequest struct {
	Filtration string `json:"filtration" validate:"omitempty,oneof=today tomorrow"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Order      string `json:"order" validate:"omitempty,oneof=start_time end_time ticket_price date"`
	HallID     string `json:"hall_id" validate:"omitempty,uuid"`
	StartFrom  string `json:"start_from" validate:"omitempty,datetime=15:04"`
	StartTo    string `json:"start_to" validate:"omitempty,datetime=15:04"`
}
