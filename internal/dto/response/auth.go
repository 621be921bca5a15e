package response

import "ticket-office/internal/data/entity"

type CustomerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Purse    int    `json:"purse"`
}

type AuthResponse struct {
	Customer CustomerResponse `json:"customer"`
	Token    string           `json:"token"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:       customer.ID.String(),
		Username: customer.Username,
		Purse:    customer.Purse,
	}
}
