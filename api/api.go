package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/tonerow/chord"
	"github.com/jsphweid/tonerow/matrix"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/pc"
	"github.com/rs/cors"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(reqBody, v)
}

func HandlePcset(w http.ResponseWriter, r *http.Request) {
	var input model.PcsetRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Pcs) == 0 {
		writeError(w, http.StatusBadRequest, "pcs should not be empty")
		return
	}

	set := pc.NewSet(input.Pcs...)
	prime := pc.PrimeForm(set)
	writeJSON(w, model.SetClass{
		Set:    set,
		Normal: pc.NormalForm(set),
		Prime:  prime,
		Vector: pc.IntervalVector(set),
		Key:    chord.Key(prime),
	})
}

func HandleMatrix(w http.ResponseWriter, r *http.Request) {
	var input model.MatrixRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	m, err := matrix.New(input.Row)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if input.Label != "" {
		row, err := m.Label(input.Label)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, model.MatrixResponse{Label: input.Label, Row: row})
		return
	}

	var rows [][]int
	for _, row := range m.Rows() {
		rows = append(rows, row)
	}
	writeJSON(w, model.MatrixResponse{Rows: rows, Text: m.String()})
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/pcset", HandlePcset).Methods("POST")
	router.HandleFunc("/matrix", HandleMatrix).Methods("POST")
	return router
}

// NewHandler wraps the router with permissive CORS for browser clients.
func NewHandler() http.Handler {
	return cors.Default().Handler(NewRouter())
}
