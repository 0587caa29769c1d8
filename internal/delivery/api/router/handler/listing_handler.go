package handler

import (
	"log/slog"

	"userhub/config"
	"userhub/internal/delivery/api/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPerPage = 10

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ListingHandler serves the paginated profile listing.
type ListingHandler struct {
	listingUC      usecase.ListingUsecase
	defaultPerPage int
	logger         *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	perPage := defaultPerPage
	if params.Config != nil && params.Config.Listing != nil && params.Config.Listing.DefaultPerPage > 0 {
		perPage = params.Config.Listing.DefaultPerPage
	}

	return &ListingHandler{
		listingUC:      params.ListingUC,
		defaultPerPage: perPage,
		logger:         params.Logger,
	}
}

// ListProfilesRequest holds the pagination query parameters
type ListProfilesRequest struct {
	Page    int `query:"page" validate:"gte=1"`
	PerPage int `query:"perPage" validate:"gte=1"`
}

// ListProfiles returns one page of profiles, newest registrations first
func (h *ListingHandler) ListProfiles(c echo.Context) error {
	req := ListProfilesRequest{Page: 1, PerPage: h.defaultPerPage}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("page and perPage must be integers")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.listingUC.ListProfiles(c.Request().Context(), usecase.ListProfilesInput{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}
