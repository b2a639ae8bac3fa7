package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tournevent/storelocator/internal/storage"
	"github.com/tournevent/storelocator/pkg/locator"
	"go.uber.org/zap"
)

// storesPageResponse is the paged CRUD listing envelope.
type storesPageResponse struct {
	Stores []storage.Store `json:"stores"`
	Limit  int64           `json:"limit"`
	Offset int64           `json:"offset"`
	Total  int64           `json:"total"`
}

// shippingStoreDTO is one serviceable store in the shipping response.
type shippingStoreDTO struct {
	Name       string                  `json:"name"`
	City       string                  `json:"city"`
	PostalCode string                  `json:"postalCode"`
	Type       string                  `json:"type"`
	Distance   string                  `json:"distance"`
	Value      []locator.CarrierOption `json:"value"`
}

// shippingResponse is the shipping resolution envelope.
type shippingResponse struct {
	Stores []shippingStoreDTO `json:"stores"`
	Pins   []locator.MapPin   `json:"pins"`
	Limit  int64              `json:"limit"`
	Offset int64              `json:"offset"`
	Total  int64              `json:"total"`
}

func (s *Server) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	var store storage.Store
	if err := json.NewDecoder(r.Body).Decode(&store); err != nil {
		s.writeError(w, r, "create_store", http.StatusBadRequest, "invalid store payload")
		return
	}

	created, err := s.repo.Create(r.Context(), &store)
	if err != nil {
		s.handleError(w, r, "create_store", err)
		return
	}
	s.ok(r, "create_store")
	writeJSON(w, http.StatusCreated, map[string]any{"store": created})
}

func (s *Server) handleUpdateStore(w http.ResponseWriter, r *http.Request) {
	var store storage.Store
	if err := json.NewDecoder(r.Body).Decode(&store); err != nil {
		s.writeError(w, r, "update_store", http.StatusBadRequest, "invalid store payload")
		return
	}

	updated, err := s.repo.Update(r.Context(), r.PathValue("id"), &store)
	if err != nil {
		s.handleError(w, r, "update_store", err)
		return
	}
	s.ok(r, "update_store")
	writeJSON(w, http.StatusOK, map[string]any{"store": updated})
}

func (s *Server) handleDeleteStore(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.handleError(w, r, "delete_store", err)
		return
	}
	s.ok(r, "delete_store")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListStores(w http.ResponseWriter, r *http.Request) {
	limit, offset := s.pagination(r)

	stores, total, err := s.repo.FindPage(r.Context(), limit, offset)
	if err != nil {
		s.handleError(w, r, "list_stores", err)
		return
	}
	s.ok(r, "list_stores")
	writeJSON(w, http.StatusOK, storesPageResponse{
		Stores: stores,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

func (s *Server) handleGetStore(w http.ResponseWriter, r *http.Request) {
	store, err := s.repo.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, "get_store", err)
		return
	}
	s.ok(r, "get_store")
	writeJSON(w, http.StatusOK, map[string]any{"store": store})
}

func (s *Server) handleStoresByState(w http.ResponseWriter, r *http.Request) {
	limit, offset := s.pagination(r)

	stores, total, err := s.repo.FindByState(r.Context(), r.PathValue("state"), limit, offset)
	if err != nil {
		s.handleError(w, r, "stores_by_state", err)
		return
	}
	s.ok(r, "stores_by_state")
	writeJSON(w, http.StatusOK, storesPageResponse{
		Stores: stores,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

func (s *Server) handleStoreShipping(w http.ResponseWriter, r *http.Request) {
	const operation = "store_shipping"
	limit, offset := s.pagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), s.shippingTimeout)
	defer cancel()

	stores, _, err := s.repo.FindPage(ctx, limit, offset)
	if err != nil {
		s.handleError(w, r, operation, err)
		return
	}

	page, err := s.orchestrator.ResolveShipping(ctx, r.PathValue("postalCode"), s.candidates(ctx, stores))
	if err != nil {
		s.handleError(w, r, operation, err)
		return
	}
	s.metrics.RecordEvaluations(
		len(page.Results),
		len(stores)-len(page.Results)-page.Failed,
		page.Failed,
	)

	dtos := make([]shippingStoreDTO, len(page.Results))
	for i, result := range page.Results {
		dtos[i] = shippingStoreDTO{
			Name:       result.Store.Name,
			City:       result.Store.City,
			PostalCode: result.Store.PostalCode.String(),
			Type:       string(result.Store.Type),
			Distance:   result.Distance.Text,
			Value:      result.Tier.Options(),
		}
	}

	s.ok(r, operation)
	writeJSON(w, http.StatusOK, shippingResponse{
		Stores: dtos,
		Pins:   page.Pins,
		Limit:  limit,
		Offset: offset,
		Total:  int64(len(dtos)),
	})
}

// candidates converts store records into engine candidates. A store whose
// own postal code is malformed cannot be evaluated and is skipped.
func (s *Server) candidates(ctx context.Context, stores []storage.Store) []locator.StoreCandidate {
	out := make([]locator.StoreCandidate, 0, len(stores))
	for _, store := range stores {
		code, err := locator.ParsePostalCode(store.Address.PostalCode)
		if err != nil {
			s.logger.Ctx(ctx).Warn("Store has malformed postal code, skipping",
				zap.String("store_id", store.ID.Hex()),
				zap.String("postal_code", store.Address.PostalCode),
			)
			continue
		}
		out = append(out, locator.StoreCandidate{
			ID:         store.ID.Hex(),
			Name:       store.StoreName,
			PostalCode: code,
			Type:       locator.StoreType(store.Type),
			City:       store.Address.City,
			State:      store.Address.State,
		})
	}
	return out
}

func (s *Server) pagination(r *http.Request) (limit, offset int64) {
	limit = s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

// handleError maps a failure onto the HTTP taxonomy: client faults name the
// offending input, server faults get a generic message plus the correlation
// id for log lookup.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status := statusForError(err)
	message := "internal server error"
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		message = err.Error()
	case status == http.StatusBadGateway:
		message = "upstream provider unavailable"
	}

	s.logger.Ctx(r.Context()).Error("Request failed",
		zap.String("operation", operation),
		zap.String("correlation_id", correlationID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	)

	var lerr *locator.Error
	if errors.As(err, &lerr) && lerr.Provider != "" {
		s.metrics.RecordProviderError(lerr.Provider, string(lerr.Kind))
	}
	s.metrics.RecordRequest(operation, strconv.Itoa(status), 0)

	writeJSON(w, status, map[string]string{
		"error":         message,
		"correlationId": correlationID(r.Context()),
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, operation string, status int, message string) {
	s.metrics.RecordRequest(operation, strconv.Itoa(status), 0)
	writeJSON(w, status, map[string]string{
		"error":         message,
		"correlationId": correlationID(r.Context()),
	})
}

func (s *Server) ok(r *http.Request, operation string) {
	s.metrics.RecordRequest(operation, "200", time.Since(requestStart(r)).Seconds())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest
	}

	switch locator.KindOf(err) {
	case locator.KindEmpty, locator.KindInvalidFormat:
		return http.StatusBadRequest
	case locator.KindNotFound:
		return http.StatusNotFound
	case locator.KindProviderError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
