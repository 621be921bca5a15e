package usecase

import (
	"context"
	"time"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/data/repository"

	"github.com/google/uuid"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	CreateFunc         func(ctx context.Context, customer *entity.Customer) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.Customer, error)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	return nil
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCustomerRepository) FindByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// MockHallRepository is a mock implementation of HallRepository
type MockHallRepository struct {
	CreateFunc     func(ctx context.Context, hall *entity.Hall) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindByNameFunc func(ctx context.Context, name string) (*entity.Hall, error)
	FindAllFunc    func(ctx context.Context) ([]*entity.Hall, error)
	UpdateFunc     func(ctx context.Context, hall *entity.Hall) error
}

func (m *MockHallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, hall)
	}
	return nil
}

func (m *MockHallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockHallRepository) FindByName(ctx context.Context, name string) (*entity.Hall, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockHallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockHallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, hall)
	}
	return nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	CreateFunc             func(ctx context.Context, session *entity.Session) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	FindByDateFunc         func(ctx context.Context, date time.Time, orderBy string) ([]*entity.Session, error)
	FindByDateFilteredFunc func(ctx context.Context, date time.Time, filter repository.SessionFilter) ([]*entity.Session, error)
	ExistsOverlappingFunc  func(ctx context.Context, hallID uuid.UUID, date, start, end time.Time) (bool, error)
	UpdateFunc             func(ctx context.Context, session *entity.Session) error
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindByDate(ctx context.Context, date time.Time, orderBy string) ([]*entity.Session, error) {
	if m.FindByDateFunc != nil {
		return m.FindByDateFunc(ctx, date, orderBy)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindByDateFiltered(ctx context.Context, date time.Time, filter repository.SessionFilter) ([]*entity.Session, error) {
	if m.FindByDateFilteredFunc != nil {
		return m.FindByDateFilteredFunc(ctx, date, filter)
	}
	return nil, nil
}

func (m *MockSessionRepository) ExistsOverlapping(ctx context.Context, hallID uuid.UUID, date, start, end time.Time) (bool, error) {
	if m.ExistsOverlappingFunc != nil {
		return m.ExistsOverlappingFunc(ctx, hallID, date, start, end)
	}
	return false, nil
}

func (m *MockSessionRepository) Update(ctx context.Context, session *entity.Session) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, session)
	}
	return nil
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	PurchaseFunc          func(ctx context.Context, customerID, sessionID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error)
	FindByCustomerIDFunc  func(ctx context.Context, customerID uuid.UUID) ([]*entity.Ticket, error)
	TotalByCustomerIDFunc func(ctx context.Context, customerID uuid.UUID) (int, error)
	ExistsBySessionIDFunc func(ctx context.Context, sessionID uuid.UUID) (bool, error)
	ExistsForHallFromFunc func(ctx context.Context, hallID uuid.UUID, fromDate time.Time) (bool, error)
}

func (m *MockTicketRepository) Purchase(ctx context.Context, customerID, sessionID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error) {
	if m.PurchaseFunc != nil {
		return m.PurchaseFunc(ctx, customerID, sessionID, amount, boughtAt)
	}
	return &entity.Ticket{
		ID:         uuid.New(),
		CustomerID: customerID,
		SessionID:  sessionID,
		Amount:     amount,
		BoughtAt:   boughtAt,
	}, nil
}

func (m *MockTicketRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Ticket, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockTicketRepository) TotalByCustomerID(ctx context.Context, customerID uuid.UUID) (int, error) {
	if m.TotalByCustomerIDFunc != nil {
		return m.TotalByCustomerIDFunc(ctx, customerID)
	}
	return 0, nil
}

func (m *MockTicketRepository) ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	if m.ExistsBySessionIDFunc != nil {
		return m.ExistsBySessionIDFunc(ctx, sessionID)
	}
	return false, nil
}

func (m *MockTicketRepository) ExistsForHallFrom(ctx context.Context, hallID uuid.UUID, fromDate time.Time) (bool, error) {
	if m.ExistsForHallFromFunc != nil {
		return m.ExistsForHallFromFunc(ctx, hallID, fromDate)
	}
	return false, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	CreateFunc           func(ctx context.Context, token *entity.Token) error
	FindByKeyFunc        func(ctx context.Context, key uuid.UUID) (*entity.Token, error)
	FindByCustomerIDFunc func(ctx context.Context, customerID uuid.UUID) (*entity.Token, error)
	TouchFunc            func(ctx context.Context, key uuid.UUID, now time.Time) error
	RotateFunc           func(ctx context.Context, oldKey uuid.UUID, replacement *entity.Token) error
	DeleteByKeyFunc      func(ctx context.Context, key uuid.UUID) error
}

func (m *MockTokenRepository) Create(ctx context.Context, token *entity.Token) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockTokenRepository) FindByKey(ctx context.Context, key uuid.UUID) (*entity.Token, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *MockTokenRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Token, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockTokenRepository) Touch(ctx context.Context, key uuid.UUID, now time.Time) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, key, now)
	}
	return nil
}

func (m *MockTokenRepository) Rotate(ctx context.Context, oldKey uuid.UUID, replacement *entity.Token) error {
	if m.RotateFunc != nil {
		return m.RotateFunc(ctx, oldKey, replacement)
	}
	return nil
}

func (m *MockTokenRepository) DeleteByKey(ctx context.Context, key uuid.UUID) error {
	if m.DeleteByKeyFunc != nil {
		return m.DeleteByKeyFunc(ctx, key)
	}
	return nil
}
