package web

import (
	"encoding/json"
	"net/http"
)

// WriteJSON estaba duplicado por módulo en las primeras versiones; con todos
// los dominios repitiéndolo, quedó extraído acá.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
