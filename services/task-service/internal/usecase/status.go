package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
)

// MaxStatusChecks caps how many check-ins are listed.
const MaxStatusChecks = 1000

// StatusUsecase records and lists client check-ins.
type StatusUsecase interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*model.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]*model.StatusCheck, error)
}

type statusUsecase struct {
	statusCheckRepo repository.StatusCheckRepository
	now             func() time.Time
}

func NewStatusUsecase(statusCheckRepo repository.StatusCheckRepository) StatusUsecase {
	return &statusUsecase{statusCheckRepo: statusCheckRepo, now: time.Now}
}

func (u *statusUsecase) CreateStatusCheck(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check, err := u.statusCheckRepo.CreateStatusCheck(ctx, &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  u.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}

	return check, nil
}

func (u *statusUsecase) ListStatusChecks(ctx context.Context) ([]*model.StatusCheck, error) {
	checks, err := u.statusCheckRepo.ListStatusChecks(ctx, MaxStatusChecks)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	return checks, nil
}
