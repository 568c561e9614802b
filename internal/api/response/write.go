package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data with the given status. Encoding failures cannot be
// reported once the status line is out, so the error is dropped.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
