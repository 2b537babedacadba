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

type PixHandler struct {
	interactor *interactor.PixInteractor
	logger     *zerolog.Logger
}

func NewPixHandler(interactor *interactor.PixInteractor) *PixHandler {
	logger := log.GetLogger()
	return &PixHandler{interactor: interactor, logger: &logger}
}

// GeneratePix creates a pix charge and answers with the pix code and the
// gateway-assigned transaction id. Gateway failures keep the upstream status.
func (h *PixHandler) GeneratePix(w http.ResponseWriter, r *http.Request) {
	var dto dtos.GeneratePixDTO
	err := json.NewDecoder(r.Body).Decode(&dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return
	}

	// Outbound calls run to completion even if the client disconnects.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	charge, err := h.interactor.GeneratePix(ctx, &dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedGeneratePix)
		errors.HandleHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(charge)
}
