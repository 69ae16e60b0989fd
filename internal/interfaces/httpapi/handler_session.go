package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSession")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}
	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.Start(ctx, principal.Email, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "start session failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(sess, time.Now()))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sess, err := h.ownedSession(w, r)
	if err != nil {
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess, time.Now()))
}

func (h *Handler) AddSessionPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSessionPlayer")
	defer span.End()

	if _, err := h.ownedSession(w, r); err != nil {
		return
	}

	var payload addSessionPlayerRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.AddPlayer(ctx, r.PathValue("sessionID"), payload.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "add session player failed", "player_id", payload.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess, time.Now()))
}

func (h *Handler) ReturnSessionPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReturnSessionPlayer")
	defer span.End()

	if _, err := h.ownedSession(w, r); err != nil {
		return
	}
	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload returnSessionPlayerRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.ReturnPlayer(ctx, r.PathValue("sessionID"), playerID, payload.TargetTeam)
	if err != nil {
		h.logger.WarnContext(ctx, "return session player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess, time.Now()))
}

func (h *Handler) ReorderSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReorderSession")
	defer span.End()

	if _, err := h.ownedSession(w, r); err != nil {
		return
	}

	var payload reorderSessionRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.Reorder(ctx, r.PathValue("sessionID"), payload.From, payload.To)
	if err != nil {
		h.logger.WarnContext(ctx, "reorder session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess, time.Now()))
}

func (h *Handler) FinalizeSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeSession")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	team, err := h.sessionService.Finalize(ctx, r.PathValue("sessionID"), principal.Email)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userTeamToDTO(team))
}

// ownedSession loads the session and rejects callers other than its owner.
// On failure the response is already written.
func (h *Handler) ownedSession(w http.ResponseWriter, r *http.Request) (usecase.Session, error) {
	ctx := r.Context()

	principal, ok := principalFromContext(ctx)
	if !ok {
		err := fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized)
		writeError(ctx, w, err)
		return usecase.Session{}, err
	}

	sess, err := h.sessionService.Get(ctx, strings.TrimSpace(r.PathValue("sessionID")))
	if err != nil {
		writeError(ctx, w, err)
		return usecase.Session{}, err
	}
	if sess.UserEmail != principal.Email {
		err := fmt.Errorf("%w: session belongs to another user", usecase.ErrUnauthorized)
		writeError(ctx, w, err)
		return usecase.Session{}, err
	}

	return sess, nil
}
