package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/logging"
	"github.com/rshade/mindful/internal/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	sess, err := session.FromValuesWithDefaults(r.URL.Query(), s.content, s.cfg.Defaults)
	if err != nil {
		log.Debug().Str("operation", "page").Err(err).Msg("rejected query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err = RenderPage(&buf, sess); err != nil {
		log.Error().Str("operation", "page").Err(err).Msg("rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	in := s.cfg.Defaults
	q := r.URL.Query()

	if raw := q.Get(session.ParamQueries); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %s=%q", session.ErrInvalidParam, session.ParamQueries, raw))
			return
		}
		in.QueryCount = n
	}
	if raw := q.Get(session.ParamLength); raw != "" {
		tier, err := greenops.ParseLengthTier(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		in.LengthTier = tier
	}

	est, err := greenops.Estimate(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.content.All())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "rank")
	rank, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: rank=%q", session.ErrInvalidParam, raw))
		return
	}
	cat, ok := s.content.ByRank(rank)
	if !ok {
		writeError(w, http.StatusNotFound, session.ErrUnknownItem)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
