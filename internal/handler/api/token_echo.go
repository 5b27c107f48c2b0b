package api

import (
	"context"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/usecase"
	xhttp "TokenScope/pkg/http"
	xlogger "TokenScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TokenService is the set of token operations exposed over HTTP.
// *usecase.TokenAnalyzer satisfies it.
type TokenService interface {
	Analyze(ctx context.Context, chain, address string) (*models.AnalysisResult, error)
	Signals(ctx context.Context, chain, address string) ([]models.Signal, error)
	Contract(ctx context.Context, chain, address string) (*models.ContractSecurity, error)
	Search(ctx context.Context, query string) ([]models.TokenSummary, error)
	Trending(ctx context.Context, chain string, limit int) ([]models.TrendingToken, error)
	Watchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, chain, address, note string) error
	RemoveFromWatchlist(ctx context.Context, chain, address string) error
	UsingFallback() bool
}

// TokenEchoHandler serves token analytics over Echo.
type TokenEchoHandler struct {
	logger *xlogger.Logger
	svc    TokenService
}

func NewTokenEchoHandler(logger *xlogger.Logger, svc TokenService) *TokenEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &TokenEchoHandler{logger: logger, svc: svc}
}

func (h *TokenEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analyze/:chain/:address", h.Analyze)
	g.GET("/signals/:chain/:address", h.Signals)
	g.GET("/contract/:chain/:address", h.Contract)
	g.GET("/search", h.Search)
	g.GET("/trending", h.Trending)
	g.GET("/watchlist", h.Watchlist)
	g.POST("/watchlist", h.AddToWatchlist)
	g.DELETE("/watchlist/:chain/:address", h.RemoveFromWatchlist)
	g.GET("/status", h.Status)
}

func (h *TokenEchoHandler) Analyze(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Analyze(c.Request().Context(), req.Chain, req.Address)
	if err != nil {
		return h.fail(c, "analyze", err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

func (h *TokenEchoHandler) Signals(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Signals(c.Request().Context(), req.Chain, req.Address)
	if err != nil {
		return h.fail(c, "signals", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *TokenEchoHandler) Contract(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Contract(c.Request().Context(), req.Chain, req.Address)
	if err != nil {
		return h.fail(c, "contract", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *TokenEchoHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Search(c.Request().Context(), req.Query)
	if err != nil {
		return h.fail(c, "search", err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *TokenEchoHandler) Trending(c echo.Context) error {
	req := &models.TrendingRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Trending(c.Request().Context(), req.Chain, req.Limit)
	if err != nil {
		return h.fail(c, "trending", err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *TokenEchoHandler) Watchlist(c echo.Context) error {
	res, err := h.svc.Watchlist(c.Request().Context())
	if err != nil {
		return h.fail(c, "watchlist", err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *TokenEchoHandler) AddToWatchlist(c echo.Context) error {
	req := &models.WatchlistAddRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.svc.AddToWatchlist(c.Request().Context(), req.Chain, req.Address, req.Note); err != nil {
		return h.fail(c, "watchlist_add", err)
	}
	return xhttp.CreatedResponse(c, req)
}

func (h *TokenEchoHandler) RemoveFromWatchlist(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.BindRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.svc.RemoveFromWatchlist(c.Request().Context(), req.Chain, req.Address); err != nil {
		return h.fail(c, "watchlist_remove", err)
	}
	return xhttp.NoContentResponse(c)
}

// Status reports whether the service is currently answering from fallback sources.
func (h *TokenEchoHandler) Status(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]bool{"usingFallback": h.svc.UsingFallback()})
}

func (h *TokenEchoHandler) fail(c echo.Context, op string, err error) error {
	appErr := xhttp.MapError(err, errorRules...)
	if appErr.Status >= 500 {
		h.logger.Error(op+" usecase error", xlogger.Error(err))
	} else {
		h.logger.Info(op+" rejected", xlogger.String("reason", err.Error()))
	}
	return xhttp.AppErrorResponse(c, appErr)
}

var errorRules = []xhttp.ErrorRule{
	{Target: usecase.ErrTokenNotFound, Build: xhttp.NotFoundError},
	{Target: usecase.ErrContractUnavailable, Build: xhttp.NotFoundError},
	{Target: usecase.ErrWatchlistUnavailable, Build: xhttp.ServiceUnavailableError},
}
