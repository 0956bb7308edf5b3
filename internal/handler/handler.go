package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"domainscout/internal/candidate"
	"domainscout/internal/domain"
	"domainscout/internal/prefs"
	"domainscout/internal/presets"
	"domainscout/internal/stream"
	"domainscout/internal/tld"
	"domainscout/internal/upstream"
	"domainscout/internal/validation"
)

const (
	clientIDHeader     = "X-Client-ID"
	jobIDHeader        = "X-Job-ID"
	defaultSuggestions = 8
	maxSuggestions     = 50
)

var (
	errInvalidBody        = map[string]string{"error": "invalid request body"}
	errTLDsRequired       = map[string]string{"error": "tlds is required"}
	errTooManyTLDs        = map[string]string{"error": "too many tlds"}
	errKeywordsTooLong    = map[string]string{"error": "keywords exceed maximum length"}
	errInvalidRPS         = map[string]string{"error": "rps must be a finite number"}
	errNothingToCheck     = map[string]string{"error": "no domains to check"}
	errMissingCredential  = map[string]string{"error": "upstream credential not configured"}
	errJobFailed          = map[string]string{"error": "failed to start job"}
	errInvalidClient      = map[string]string{"error": "invalid client id"}
	errInvalidTLD         = map[string]string{"error": "invalid tld"}
	errPrefsFailed        = map[string]string{"error": "failed to update preferences"}
	errInvalidSuggestions = map[string]string{"error": "limit must be a positive integer"}
	respHealthOK          = map[string]string{"status": "ok"}
)

type Handler struct {
	checkService CheckService
	validator    RequestValidator
	prefs        PrefsStore
	logger       *slog.Logger
	recorder     BusinessRecorder
	streamBuffer int
	presets      *presets.Catalog
}

func New(
	checkService CheckService,
	validator RequestValidator,
	prefsStore PrefsStore,
	logger *slog.Logger,
	recorder BusinessRecorder,
	streamBuffer int,
) *Handler {
	return &Handler{
		checkService: checkService,
		validator:    validator,
		prefs:        prefsStore,
		logger:       logger,
		recorder:     recorder,
		streamBuffer: streamBuffer,
		presets:      presets.Default(),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/check/stream", h.CheckStream)
	api.POST("/candidates", h.Candidates)

	api.GET("/tlds", h.ListTLDs)
	api.POST("/tlds/validate", h.ValidateTLDs)
	api.GET("/tlds/suggest", h.SuggestTLDs)
	api.GET("/presets", h.ListPresets)

	api.GET("/prefs/:client", h.GetPrefs)
	api.POST("/prefs/:client/favorites", h.AddFavorite)
	api.DELETE("/prefs/:client/favorites/:tld", h.RemoveFavorite)
	api.POST("/prefs/:client/recents", h.TouchRecents)
	api.DELETE("/prefs/:client/recents", h.ClearRecents)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// CheckStream validates and sizes the job up front, so every rejection is a
// plain JSON error. Once the first byte is written the response is an
// NDJSON stream that always ends with the done record.
func (h *Handler) CheckStream(c echo.Context) error {
	var req domain.CheckRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateCheckRequest(req); err != nil {
		return h.handleValidationError(c, err)
	}

	job, err := h.checkService.PrepareJob(req)
	if err != nil {
		return h.handleJobError(c, err)
	}

	mode := "domains"
	if req.UsesKeywords() {
		mode = "keywords"
		h.touchRecents(c, req.TLDs)
	}
	h.recorder.RecordBusiness("job_requested", float64(len(job.Candidates)), map[string]string{
		"mode":      mode,
		"client_ip": c.RealIP(),
	})

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, stream.ContentType)
	resp.Header().Set("Cache-Control", "no-store")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.Header().Set(jobIDHeader, job.ID)
	resp.WriteHeader(http.StatusOK)

	// A job can outlive the server write timeout.
	if err := http.NewResponseController(resp).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.Warn("failed to clear write deadline", slog.String("error", err.Error()))
	}

	emitter := stream.NewEmitter(resp, h.streamBuffer)
	g, gctx := errgroup.WithContext(c.Request().Context())
	g.Go(emitter.Run)
	g.Go(func() error {
		defer emitter.Close()
		return h.checkService.Run(gctx, job, emitter)
	})

	switch err := g.Wait(); {
	case errors.Is(err, stream.ErrConsumerGone):
		h.logger.Info("client disconnected",
			slog.String("job_id", job.ID),
			slog.Int("records", emitter.Written()),
			slog.String("error", err.Error()))
	case err != nil:
		h.logger.Error("job ended with error",
			slog.String("job_id", job.ID),
			slog.Int("records", emitter.Written()),
			slog.String("error", err.Error()))
	default:
		h.logger.Info("stream closed",
			slog.String("job_id", job.ID),
			slog.Int("records", emitter.Written()))
	}
	return nil
}

func (h *Handler) Candidates(c echo.Context) error {
	var req domain.CheckRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateCheckRequest(req); err != nil {
		return h.handleValidationError(c, err)
	}

	return c.JSON(http.StatusOK, h.checkService.Preview(req))
}

// ListPresets returns the built-in keyword lists for both sides.
func (h *Handler) ListPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.presets)
}

func (h *Handler) ListTLDs(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.TLDListResponse{
		Primary: tld.Primary(),
		All:     tld.All(),
	})
}

// ValidateTLDs reports on every entry instead of failing on the first bad
// one; only a missing or oversized list is rejected.
func (h *Handler) ValidateTLDs(c echo.Context) error {
	var req domain.ValidateTLDsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateTLDs(req.TLDs); err != nil {
		var batchErr *validation.BatchValidationError
		if !errors.As(err, &batchErr) {
			return h.handleValidationError(c, err)
		}
	}

	reports := make([]domain.TLDReport, 0, len(req.TLDs))
	for _, input := range req.TLDs {
		r := domain.TLDReport{
			Input:      input,
			Normalized: tld.Normalize(input),
			Valid:      tld.IsLikelyValid(input),
			Known:      tld.IsKnown(input),
			Listed:     tld.IsListed(input),
		}
		if !r.Known {
			if fixed, ok := tld.Autocorrect(input); ok {
				r.Suggestion = fixed
			}
		}
		reports = append(reports, r)
	}

	_, unknown := tld.Split(req.TLDs)
	if unknown == nil {
		unknown = []string{}
	}
	return c.JSON(http.StatusOK, domain.ValidateTLDsResponse{TLDs: reports, Unknown: unknown})
}

// SuggestTLDs ranks known TLDs for a partial entry. mode=closest treats the
// query as a finished entry and returns nothing for a known TLD.
func (h *Handler) SuggestTLDs(c echo.Context) error {
	q := c.QueryParam("q")

	limit := defaultSuggestions
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errInvalidSuggestions)
		}
		limit = min(n, maxSuggestions)
	}

	var suggestions []string
	if c.QueryParam("mode") == "closest" {
		suggestions = tld.SuggestClosest(q, limit)
	} else {
		suggestions = tld.Suggest(q, limit)
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return c.JSON(http.StatusOK, domain.TLDSuggestResponse{Query: q, Suggestions: suggestions})
}

func (h *Handler) GetPrefs(c echo.Context) error {
	p, err := h.prefs.Get(c.Param("client"))
	if err != nil {
		return h.handlePrefsError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AddFavorite(c echo.Context) error {
	var req domain.TLDRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	p, err := h.prefs.AddFavorite(c.Param("client"), req.TLD)
	if err != nil {
		return h.handlePrefsError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) RemoveFavorite(c echo.Context) error {
	p, err := h.prefs.RemoveFavorite(c.Param("client"), c.Param("tld"))
	if err != nil {
		return h.handlePrefsError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) TouchRecents(c echo.Context) error {
	var req domain.ValidateTLDsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	p, err := h.prefs.TouchRecent(c.Param("client"), req.TLDs)
	if err != nil {
		return h.handlePrefsError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ClearRecents(c echo.Context) error {
	p, err := h.prefs.ClearRecents(c.Param("client"))
	if err != nil {
		return h.handlePrefsError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// touchRecents records the TLDs of a keyword job for clients that identify
// themselves. Failures never block the job.
func (h *Handler) touchRecents(c echo.Context, tlds []string) {
	client := c.Request().Header.Get(clientIDHeader)
	if client == "" {
		return
	}
	if _, err := h.prefs.TouchRecent(client, tlds); err != nil {
		h.logger.Debug("failed to record recent tlds",
			slog.String("client", client),
			slog.String("error", err.Error()))
	}
}

func (h *Handler) handleJobError(c echo.Context, err error) error {
	var limitErr *candidate.LimitError
	switch {
	case errors.Is(err, upstream.ErrMissingCredential):
		return c.JSON(http.StatusServiceUnavailable, errMissingCredential)
	case errors.Is(err, candidate.ErrNothingToCheck):
		return c.JSON(http.StatusUnprocessableEntity, errNothingToCheck)
	case errors.As(err, &limitErr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error": limitErr.Error(),
			"count": limitErr.Count,
			"max":   limitErr.Max,
		})
	default:
		h.logger.Error("failed to prepare job", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errJobFailed)
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrTLDsRequired):
		return c.JSON(http.StatusBadRequest, errTLDsRequired)
	case errors.Is(err, validation.ErrTooManyTLDs):
		return c.JSON(http.StatusBadRequest, errTooManyTLDs)
	case errors.Is(err, validation.ErrKeywordsTooLong):
		return c.JSON(http.StatusBadRequest, errKeywordsTooLong)
	case errors.Is(err, validation.ErrInvalidRPS):
		return c.JSON(http.StatusBadRequest, errInvalidRPS)
	default:
		var batchErr *validation.BatchValidationError
		if errors.As(err, &batchErr) {
			return c.JSON(http.StatusBadRequest, h.formatBatchErrors(batchErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func (h *Handler) handlePrefsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, prefs.ErrInvalidClient):
		return c.JSON(http.StatusBadRequest, errInvalidClient)
	case errors.Is(err, prefs.ErrInvalidTLD):
		return c.JSON(http.StatusBadRequest, errInvalidTLD)
	default:
		h.logger.Error("failed to update preferences", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errPrefsFailed)
	}
}

func (h *Handler) formatBatchErrors(err *validation.BatchValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
