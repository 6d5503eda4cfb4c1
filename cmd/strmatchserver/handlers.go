package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/carbocation/strmatch/match"
	"github.com/carbocation/strmatch/profile"
	"github.com/gorilla/mux"
)

// matchRequest is the POST /match body: a query profile keyed by locus name,
// with allele values in the same textual form the file loaders accept.
type matchRequest struct {
	SampleID string            `json:"sample_id"`
	Alleles  map[string]string `json:"alleles"`
}

type matchResponse struct {
	QueryID string         `json:"query_id"`
	Hits    []match.Result `json:"hits"`
}

func (h *handler) Status(w http.ResponseWriter, r *http.Request) {
	out := struct {
		Database   string `json:"database"`
		Samples    int    `json:"samples"`
		Loci       int    `json:"loci"`
		Goroutines int    `json:"goroutines"`
	}{
		Database:   h.Global.DatabasePath,
		Samples:    len(h.Global.Table().Records),
		Loci:       len(h.Global.Table().Loci),
		Goroutines: runtime.NumGoroutine(),
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *handler) Goroutines(w http.ResponseWriter, r *http.Request) {
	goroutines := fmt.Sprintf("%d goroutines are currently active\n", runtime.NumGoroutine())

	w.Write([]byte(goroutines))
}

// MatchByID ranks a sample that is already in the database against the rest
// of the database.
func (h *handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	sampleID := mux.Vars(r)["sample_id"]

	row, ok := h.Global.RowOf(sampleID)
	if !ok {
		http.Error(w, fmt.Sprintf("sample %q is not in the database", sampleID), http.StatusNotFound)
		return
	}

	h.rank(w, h.Global.Table().ProfileOf(row))
}

// MatchProfile ranks an ad hoc query profile delivered in the request body.
func (h *handler) MatchProfile(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := profile.Profile{
		SampleID: req.SampleID,
		Alleles:  make(map[string]profile.AlleleSet, len(req.Alleles)),
	}
	for locus, raw := range req.Alleles {
		if alleles := profile.ParseAlleles(raw); !alleles.Absent() {
			query.Alleles[locus] = alleles
		}
	}

	h.rank(w, query)
}

func (h *handler) rank(w http.ResponseWriter, query profile.Profile) {
	hits, err := match.Rank(h.Global.Table(), query, h.Global.Workers)
	if err != nil {
		var schemaErr profile.SchemaError
		if errors.As(err, &schemaErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{QueryID: query.SampleID, Hits: hits})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		global.log.Println(err)
	}
}
