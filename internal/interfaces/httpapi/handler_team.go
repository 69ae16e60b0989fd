package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
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

	team, err := h.teamService.GetUserTeam(ctx, principal.Email, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user team failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userTeamToDTO(team))
}

func (h *Handler) SaveMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyTeam")
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

	var payload saveTeamRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.teamService.SaveUserTeam(ctx, principal.Email, matchID, payload.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "save user team failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userTeamToDTO(team))
}
