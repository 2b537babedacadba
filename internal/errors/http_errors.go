package errors

import (
	"encoding/json"
	"net/http"
)

type HTTPError struct {
	Error json.RawMessage `json:"error"`
}

// HandleHTTPError handles http errors. Gateway failures keep the upstream
// status code and payload, matching what the payment API reported.
func HandleHTTPError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch e := err.(type) {
	case *BadRequestError:
		writeError(w, http.StatusBadRequest, e.Error())
	case *GatewayError:
		if e.Body != "" && json.Valid([]byte(e.Body)) {
			w.WriteHeader(e.Status())
			json.NewEncoder(w).Encode(HTTPError{Error: json.RawMessage(e.Body)})
			return
		}
		writeError(w, e.Status(), e.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	raw, _ := json.Marshal(message)
	json.NewEncoder(w).Encode(HTTPError{Error: raw})
}
