package response

import (
	"time"

	"ticket-office/internal/data/entity"
)

type HallResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:        hall.ID.String(),
		Name:      hall.Name,
		Size:      hall.Size,
		CreatedAt: hall.CreatedAt,
	}
}
