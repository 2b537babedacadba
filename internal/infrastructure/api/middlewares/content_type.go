package middlewares

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mufasadev/pix-broker/internal/usecases/dtos"
	"github.com/mufasadev/pix-broker/pkg/log"
)

const MsgInvalidContent = "Conteúdo inválido"

// JSONContentTypeMiddleware rejects webhook posts that do not declare a JSON
// body.
func JSONContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
			logger := log.GetLogger()
			logger.Warn().Str("content_type", contentType).Msg("rejected non-JSON notification")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(dtos.NotificationAck{Success: false, Message: MsgInvalidContent})
			return
		}

		next.ServeHTTP(w, r)
	})
}
