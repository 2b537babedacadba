package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/internal/usecases/dtos"
	"github.com/mufasadev/pix-broker/internal/usecases/interactor"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
)

const (
	MsgInvalidContent  = "Conteúdo inválido"
	MsgIncompleteData  = "Dados incompletos"
	MsgProcessed       = "Notificação processada com sucesso"
	MsgProcessingError = "Erro ao processar notificação"
)

type NotificationHandler struct {
	interactor *interactor.NotificationInteractor
	logger     *zerolog.Logger
}

func NewNotificationHandler(interactor *interactor.NotificationInteractor) *NotificationHandler {
	logger := log.GetLogger()
	return &NotificationHandler{interactor: interactor, logger: &logger}
}

// HandleNotification receives the payment gateway's webhook. The gateway gets
// 200 whenever the notification reached processing; only validation failures
// and status-lookup errors change the code.
func (h *NotificationHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	var dto dtos.NotificationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		writeAck(w, http.StatusBadRequest, dtos.NotificationAck{Success: false, Message: MsgInvalidContent})
		return
	}

	if !dto.Complete() {
		h.logger.Warn().
			Str("action", dto.Action).
			Str("type", dto.Type).
			Str("id", dto.Data.ID).
			Msg("incomplete notification payload")
		writeAck(w, http.StatusBadRequest, dtos.NotificationAck{Success: false, Message: MsgIncompleteData})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.interactor.Process(ctx, &dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedProcessNotification)
		writeAck(w, http.StatusInternalServerError, dtos.NotificationAck{Success: false, Message: MsgProcessingError})
		return
	}

	writeAck(w, http.StatusOK, dtos.NotificationAck{Success: true, Message: MsgProcessed})
}

func writeAck(w http.ResponseWriter, code int, ack dtos.NotificationAck) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ack)
}
