package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/operations"
	"github.com/cleared-dev/ledgerlab/internal/reports"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

// Report kinds served under /api/sessions/{id}/reports/{kind}.
const (
	KindTrialBalance    = "trial-balance"
	KindBalanceSheet    = "balance-sheet"
	KindIncomeStatement = "income-statement"
	KindCashFlow        = "cash-flow"
)

// maxBodyBytes caps request bodies. An entry is a few hundred bytes.
const maxBodyBytes = 64 << 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"service":  "ledgerlab",
		"sessions": s.store.Len(),
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	all := s.chart.All()
	out := make([]accountDTO, 0, len(all))
	for _, a := range all {
		out = append(out, toAccountDTO(a))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	out := make([]presetDTO, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, toPresetDTO(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.Create()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Debug().Str("session", id).Msg("session created")
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	var out []entryDTO
	err := s.store.With(chi.URLParam(r, "id"), func(sess *session.Session) error {
		entries := sess.Entries()
		out = make([]entryDTO, 0, len(entries))
		for _, e := range entries {
			out = append(out, toEntryDTO(e, sess.Chart()))
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	s.addEntry(w, r, func(sess *session.Session, req entryRequest) (string, error) {
		e, err := req.entry()
		if err != nil {
			return "", badRequest{err}
		}
		return sess.Add(e)
	})
}

func (s *Server) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	s.addEntry(w, r, func(sess *session.Session, req entryRequest) (string, error) {
		e, err := req.entry()
		if err != nil {
			return "", badRequest{err}
		}
		return sess.ApplyPreset(key, e)
	})
}

func (s *Server) addEntry(w http.ResponseWriter, r *http.Request, add func(*session.Session, entryRequest) (string, error)) {
	var req entryRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, badRequest{err})
		return
	}

	var created entryDTO
	err := s.store.With(chi.URLParam(r, "id"), func(sess *session.Session) error {
		if _, err := add(sess, req); err != nil {
			return err
		}
		entries := sess.Entries()
		created = toEntryDTO(entries[len(entries)-1], sess.Chart())
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleClearEntries(w http.ResponseWriter, r *http.Request) {
	err := s.store.With(chi.URLParam(r, "id"), func(sess *session.Session) error {
		sess.Clear()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	build, ok := reportBuilders[kind]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown report " + kind})
		return
	}

	resp := reportResponse{Kind: kind}
	err := s.store.With(chi.URLParam(r, "id"), func(sess *session.Session) error {
		report, err := build(sess)
		if errors.Is(err, reports.ErrNoData) {
			return nil
		}
		if err != nil {
			return err
		}
		resp.Available = true
		resp.Report = report
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

var reportBuilders = map[string]func(*session.Session) (any, error){
	KindTrialBalance: func(sess *session.Session) (any, error) {
		tb, err := sess.TrialBalance()
		if err != nil {
			return nil, err
		}
		return toTrialBalanceDTO(tb), nil
	},
	KindBalanceSheet: func(sess *session.Session) (any, error) {
		bs, err := sess.BalanceSheet()
		if err != nil {
			return nil, err
		}
		return toBalanceSheetDTO(bs), nil
	},
	KindIncomeStatement: func(sess *session.Session) (any, error) {
		is, err := sess.IncomeStatement()
		if err != nil {
			return nil, err
		}
		return toIncomeStatementDTO(is), nil
	},
	KindCashFlow: func(sess *session.Session) (any, error) {
		cf, err := sess.CashFlow()
		if err != nil {
			return nil, err
		}
		return toCashFlowDTO(cf), nil
	},
}

// badRequest marks malformed input.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var br badRequest
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
	case errors.Is(err, session.ErrStoreFull):
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, operations.ErrUnknownPreset):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &br):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case len(journal.Violations(err)) > 0:
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      "entry rejected",
			Violations: toViolations(journal.Violations(err)),
		})
	default:
		s.log.Error().Err(err).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
