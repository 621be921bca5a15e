package usecase

import (
	"time"

	"ticket-office/internal/data/repository"
	"ticket-office/pkg/utils"

	"go.uber.org/zap"
)

// Clock supplies the current time. Injected so date filters and expiry
// checks are computed per call and can be pinned in tests.
type Clock func() time.Time

type Service struct {
	Auth     AuthService
	Schedule ScheduleService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		Auth:     NewAuthService(repo, config, log, clock),
		Schedule: NewScheduleService(repo, log, clock),
		Booking:  NewBookingService(repo, log, clock),
	}
}
