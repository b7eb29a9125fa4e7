package usecase

import (
	"ticket-service/internal/data/repository"
	"ticket-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(repo.Payment, repo.SeatReservation, config.Ticket, log),
	}
}
