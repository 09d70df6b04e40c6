// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/go-chi/chi/v5"
)

// listEmpanadas handles GET /empanadas?id=&name=.
func (h *Handler) listEmpanadas(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid query")
		writeError(w, err)
		return
	}

	empanadas, err := h.services.EmpanadaService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("error listing empanadas")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, empanadas, http.StatusOK)
}

// createEmpanada handles POST /empanadas.
func (h *Handler) createEmpanada(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEmpanada
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	created, err := h.services.EmpanadaService.Create(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("error creating empanada")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateEmpanada handles PUT /empanadas/{id}.
func (h *Handler) updateEmpanada(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		log.Err(err).Msg("invalid id")
		writeError(w, err)
		return
	}

	var req models.UpdateEmpanada
	if err = decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	updated, err := h.services.EmpanadaService.Update(r.Context(), id, req)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating empanada")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteEmpanada handles DELETE /empanadas/{id}. Unknown ids succeed.
func (h *Handler) deleteEmpanada(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		log.Err(err).Msg("invalid id")
		writeError(w, err)
		return
	}

	if err = h.services.EmpanadaService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting empanada")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// filterFromQuery reads the id and name filters. An empty name means no
// filter; an id that is present must be an integer.
func filterFromQuery(r *http.Request) (models.EmpanadaFilter, error) {
	query := r.URL.Query()

	var filter models.EmpanadaFilter
	if query.Has("id") {
		id, err := strconv.ParseInt(query.Get("id"), 10, 64)
		if err != nil {
			return models.EmpanadaFilter{}, fmt.Errorf("%w: id must be an integer", ErrInvalidParam)
		}
		filter.ID = models.Some(id)
	}
	if name := query.Get("name"); name != "" {
		filter.Name = models.Some(name)
	}

	return filter, nil
}

func idFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", ErrInvalidParam)
	}
	return id, nil
}

// decodeJSON decodes exactly one JSON value from the body. Anything but
// whitespace after it makes the body malformed.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedBody, describeJSONError(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}
	return nil
}

// describeJSONError turns a decoding error into a client-facing message
// without Go type names.
func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "body must be a JSON object"
		}
		return fmt.Sprintf("%s: must be %s", typeErr.Field, describeKind(typeErr.Type))
	case errors.Is(err, io.EOF):
		return "body is empty"
	default:
		return "body is not valid JSON"
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return "a valid value"
	}
}
