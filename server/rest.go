package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/startupwire/startupwire/pkg/db"
)

// statusHandler returns server status with the number of stored batches
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	batches, err := s.db.CountBatches(r.Context())
	if err != nil {
		log.Printf("[ERROR] can't count batches: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"batches": batches,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// digestHandler returns the stories of the most recent batch in rank order
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchID, err := s.db.LatestBatchID(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("no digest available yet"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] can't get latest batch: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	articles, err := s.db.GetBatchArticles(ctx, batchID)
	if err != nil {
		log.Printf("[ERROR] can't get articles for batch %d: %v", batchID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"batch_id": batchID,
		"articles": articles,
	})
}

// reportHandler returns the report of the most recent batch
func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchID, err := s.db.LatestBatchID(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("no report available yet"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] can't get latest batch: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	report, err := s.db.GetReport(ctx, batchID)
	if err != nil {
		log.Printf("[ERROR] can't get report for batch %d: %v", batchID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, report)
}
