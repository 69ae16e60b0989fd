package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

// Pinger reports connectivity of the backing store for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	matchService   *usecase.MatchService
	rosterService  *usecase.RosterService
	teamService    *usecase.TeamService
	sessionService *usecase.SessionService
	store          Pinger
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	rosterService *usecase.RosterService,
	teamService *usecase.TeamService,
	sessionService *usecase.SessionService,
	store Pinger,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:   matchService,
		rosterService:  rosterService,
		teamService:    teamService,
		sessionService: sessionService,
		store:          store,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	payload := map[string]string{"status": "ok", "store": "ok"}
	status := http.StatusOK
	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "store ping failed", "error", err)
			payload["status"] = "degraded"
			payload["store"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	writeSuccess(ctx, w, status, payload)
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}

	return v, nil
}
