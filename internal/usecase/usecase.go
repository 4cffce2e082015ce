package usecase

import (
	"time"

	"team-availability/internal/repository"
	"team-availability/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AvailabilityUsecaseInterface
	MemberUsecaseInterface
	TeamUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, timeout)
}
