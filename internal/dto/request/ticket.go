package request

type PurchaseTicketRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Amount    int    `json:"amount" validate:"required,gte=1,lte=1000000"`
}
