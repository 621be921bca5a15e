package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/data/repository"
	"ticket-office/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(repo *repository.Repository) BookingService {
	return NewBookingService(repo, zap.NewNop(), testClock)
}

func TestPurchase_Success(t *testing.T) {
	customerID := uuid.New()
	sessionID := uuid.New()
	var gotBoughtAt time.Time
	repo := &repository.Repository{
		Ticket: &MockTicketRepository{
			PurchaseFunc: func(ctx context.Context, cID, sID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error) {
				gotBoughtAt = boughtAt
				return &entity.Ticket{
					ID:         uuid.New(),
					CustomerID: cID,
					SessionID:  sID,
					Amount:     amount,
					BoughtAt:   boughtAt,
				}, nil
			},
		},
	}

	svc := newBookingService(repo)
	resp, err := svc.Purchase(context.Background(), customerID.String(), &request.PurchaseTicketRequest{
		SessionID: sessionID.String(),
		Amount:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, sessionID.String(), resp.SessionID)
	assert.Equal(t, 3, resp.Amount)
	// The store receives the injected clock's time, not its own.
	assert.Equal(t, testNow, gotBoughtAt)
}

func TestPurchase_StoreErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     error
	}{
		{
			name:     "sold out",
			storeErr: entity.ErrNoSeatsAvailable,
			want:     entity.ErrNoSeatsAvailable,
		},
		{
			name:     "not enough seats",
			storeErr: fmt.Errorf("%w (amount: 10 > available seats: 4)", entity.ErrInsufficientSeats),
			want:     entity.ErrInsufficientSeats,
		},
		{
			name:     "not enough funds",
			storeErr: fmt.Errorf("%w (cost: 1200 > purse: 900)", entity.ErrInsufficientFunds),
			want:     entity.ErrInsufficientFunds,
		},
		{
			name:     "unknown session",
			storeErr: entity.ErrSessionNotFound,
			want:     entity.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repository.Repository{
				Ticket: &MockTicketRepository{
					PurchaseFunc: func(ctx context.Context, cID, sID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error) {
						return nil, tt.storeErr
					},
				},
			}

			svc := newBookingService(repo)
			resp, err := svc.Purchase(context.Background(), uuid.New().String(), &request.PurchaseTicketRequest{
				SessionID: uuid.New().String(),
				Amount:    10,
			})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPurchase_AmountOutOfBounds(t *testing.T) {
	svc := newBookingService(&repository.Repository{Ticket: &MockTicketRepository{}})

	for _, amount := range []int{0, -1, 1000001} {
		resp, err := svc.Purchase(context.Background(), uuid.New().String(), &request.PurchaseTicketRequest{
			SessionID: uuid.New().String(),
			Amount:    amount,
		})

		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	}
}

func TestPurchase_InvalidCustomerID(t *testing.T) {
	svc := newBookingService(&repository.Repository{Ticket: &MockTicketRepository{}})

	resp, err := svc.Purchase(context.Background(), "not-a-uuid", &request.PurchaseTicketRequest{
		SessionID: uuid.New().String(),
		Amount:    1,
	})

	assert.Nil(t, resp)
	require.Error(t, err)
}

// TestPurchase_ConcurrentNeverOversells drives parallel purchases through a
// store mock that honors the conditional-decrement contract of the real
// transaction: a seat is only taken while seats remain, under a lock. With
// 5 seats and 20 single-seat buyers, exactly 5 must succeed and the rest
// must fail with a seat error.
func TestPurchase_ConcurrentNeverOversells(t *testing.T) {
	const seats = 5
	const buyers = 20

	var mu sync.Mutex
	remaining := seats

	repo := &repository.Repository{
		Ticket: &MockTicketRepository{
			PurchaseFunc: func(ctx context.Context, cID, sID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error) {
				mu.Lock()
				defer mu.Unlock()
				if remaining == 0 {
					return nil, entity.ErrNoSeatsAvailable
				}
				if amount > remaining {
					return nil, entity.ErrInsufficientSeats
				}
				remaining -= amount
				return &entity.Ticket{
					ID:         uuid.New(),
					CustomerID: cID,
					SessionID:  sID,
					Amount:     amount,
					BoughtAt:   boughtAt,
				}, nil
			},
		},
	}

	svc := newBookingService(repo)
	sessionID := uuid.New().String()

	var wg sync.WaitGroup
	results := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), uuid.New().String(), &request.PurchaseTicketRequest{
				SessionID: sessionID,
				Amount:    1,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entity.ErrNoSeatsAvailable)
		}
	}

	assert.Equal(t, seats, succeeded)
	assert.Equal(t, 0, remaining)
}

func TestListTickets(t *testing.T) {
	customerID := uuid.New()
	sessionID := uuid.New()
	repo := &repository.Repository{
		Ticket: &MockTicketRepository{
			FindByCustomerIDFunc: func(ctx context.Context, cID uuid.UUID) ([]*entity.Ticket, error) {
				assert.Equal(t, customerID, cID)
				return []*entity.Ticket{
					{ID: uuid.New(), CustomerID: cID, SessionID: sessionID, Amount: 2, BoughtAt: testNow},
					{ID: uuid.New(), CustomerID: cID, SessionID: sessionID, Amount: 1, BoughtAt: testNow},
				}, nil
			},
		},
	}

	svc := newBookingService(repo)
	tickets, err := svc.ListTickets(context.Background(), customerID.String())

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, 2, tickets[0].Amount)
	assert.Equal(t, sessionID.String(), tickets[0].SessionID)
}

func TestPurchaseTotal(t *testing.T) {
	customerID := uuid.New()
	repo := &repository.Repository{
		Ticket: &MockTicketRepository{
			TotalByCustomerIDFunc: func(ctx context.Context, cID uuid.UUID) (int, error) {
				assert.Equal(t, customerID, cID)
				return 4500, nil
			},
		},
	}

	svc := newBookingService(repo)
	resp, err := svc.PurchaseTotal(context.Background(), customerID.String())

	require.NoError(t, err)
	assert.Equal(t, 4500, resp.Total)
}

func TestPurchaseTotal_NoTickets(t *testing.T) {
	repo := &repository.Repository{
		Ticket: &MockTicketRepository{},
	}

	svc := newBookingService(repo)
	resp, err := svc.PurchaseTotal(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}
