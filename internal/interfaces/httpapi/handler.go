package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/ufaleague/league-api/internal/platform/logging"
	"github.com/ufaleague/league-api/internal/usecase"
)

type Handler struct {
	seasonService   *usecase.SeasonService
	teamService     *usecase.TeamService
	holidayService  *usecase.HolidayService
	fixtureService  *usecase.FixtureService
	scheduleService *usecase.ScheduleService
	cascadeService  *usecase.CascadeService
	auditService    *usecase.AuditService
	summaryService  *usecase.SummaryService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	teamService *usecase.TeamService,
	holidayService *usecase.HolidayService,
	fixtureService *usecase.FixtureService,
	scheduleService *usecase.ScheduleService,
	cascadeService *usecase.CascadeService,
	auditService *usecase.AuditService,
	summaryService *usecase.SummaryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:   seasonService,
		teamService:     teamService,
		holidayService:  holidayService,
		fixtureService:  fixtureService,
		scheduleService: scheduleService,
		cascadeService:  cascadeService,
		auditService:    auditService,
		summaryService:  summaryService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
