package response

import "ticket-office/internal/data/entity"

type SessionResponse struct {
	ID             string `json:"id"`
	HallID         string `json:"hall_id"`
	TicketPrice    int    `json:"ticket_price"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSeats int    `json:"available_seats"`
}

func SessionToResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		ID:             session.ID.String(),
		HallID:         session.HallID.String(),
		TicketPrice:    session.TicketPrice,
		Date:           session.Date.Format("2006-01-02"),
		StartTime:      session.StartTime.Format("15:04"),
		EndTime:        session.EndTime.Format("15:04"),
		AvailableSeats: session.AvailableSeats,
	}
}

func SessionsToResponse(sessions []*entity.Session) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = SessionToResponse(session)
	}
	return responses
}
