package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ticket-service/internal/data/entity"
	"ticket-service/internal/dto/request"
	"ticket-service/internal/usecase"
	"ticket-service/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseTicketsRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tickets := make([]entity.TicketTypeRequest, 0, len(req.Tickets))
	ticketErrors := make(map[string]string)
	for i, line := range req.Tickets {
		ticket, err := entity.ParseTicketTypeRequest(line.Type, line.Quantity)
		if err != nil {
			ticketErrors[fmt.Sprintf("Tickets[%d]", i)] = err.Error()
			continue
		}
		tickets = append(tickets, ticket)
	}
	if len(ticketErrors) > 0 {
		h.log.Warn("Malformed ticket lines", zap.Any("errors", ticketErrors))
		utils.ResponseBadRequest(w, "Invalid ticket request", ticketErrors)
		return
	}

	accountID := entity.ParseAccountID(req.AccountID)

	result, err := h.service.PurchaseTickets(r.Context(), accountID, tickets...)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}

// GetTicketPrices handles GET /api/tickets/prices
func (h *TicketHandler) GetTicketPrices(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetTicketPrices(r.Context()))
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if usecase.IsInvalidPurchase(err) {
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
