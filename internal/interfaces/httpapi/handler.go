package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// Services groups the use cases the HTTP layer talks to.
type Services struct {
	Divisions   *usecase.DivisionService
	Standings   *usecase.StandingService
	Overview    *usecase.OverviewService
	Results     *usecase.ResultService
	Teams       *usecase.TeamService
	Headlines   *usecase.HeadlineService
	Matches     *usecase.MatchService
	Players     *usecase.PlayerService
	Corrections *usecase.CorrectionService
	Recompute   *usecase.RecomputeService
}

type Handler struct {
	divisionService   *usecase.DivisionService
	standingService   *usecase.StandingService
	overviewService   *usecase.OverviewService
	resultService     *usecase.ResultService
	teamService       *usecase.TeamService
	headlineService   *usecase.HeadlineService
	matchService      *usecase.MatchService
	playerService     *usecase.PlayerService
	correctionService *usecase.CorrectionService
	recomputeService  *usecase.RecomputeService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		divisionService:   services.Divisions,
		standingService:   services.Standings,
		overviewService:   services.Overview,
		resultService:     services.Results,
		teamService:       services.Teams,
		headlineService:   services.Headlines,
		matchService:      services.Matches,
		playerService:     services.Players,
		correctionService: services.Corrections,
		recomputeService:  services.Recompute,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON strictly decodes the body into dst and runs struct validation.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// queryLimit reads ?limit=. Missing values use def, values above max are
// clamped, and non-numeric or negative values are rejected.
func queryLimit(r *http.Request, def, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput)
	}
	if limit == 0 {
		return def, nil
	}
	if limit > max {
		return max, nil
	}
	return limit, nil
}
