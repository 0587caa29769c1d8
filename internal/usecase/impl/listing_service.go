package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"userhub/config"
	deliverycontext "userhub/internal/delivery/context"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/usecase"

	"go.uber.org/fx"
)

const defaultMaxPerPage = 100

type listingService struct {
	userRepo   repository.UserRepository
	maxPerPage int
	logger     *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewListingService creates a new listing service instance.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	maxPerPage := defaultMaxPerPage
	if params.Config != nil && params.Config.Listing != nil && params.Config.Listing.MaxPerPage > 0 {
		maxPerPage = params.Config.Listing.MaxPerPage
	}

	return &listingService{
		userRepo:   params.UserRepo,
		maxPerPage: maxPerPage,
		logger:     params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProfiles returns one page of profiles, newest registrations first.
func (srv *listingService) ListProfiles(ctx context.Context, input usecase.ListProfilesInput) (*usecase.ListProfilesOutput, error) {
	if input.Page < 1 || input.PerPage < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("page and perPage must be at least 1")
	}
	if input.PerPage > srv.maxPerPage {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("perPage must not exceed %d", srv.maxPerPage))
	}

	offset := pageOffset(input.Page, input.PerPage)
	users, total, err := srv.userRepo.List(ctx, offset, input.PerPage)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Int("page", input.Page), slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage(err.Error())
	}

	views := make([]*usecase.ProfileView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewProfileView(user))
	}

	return &usecase.ListProfilesOutput{
		Total:       total,
		TotalPages:  totalPages(total, input.PerPage),
		CurrentPage: input.Page,
		Users:       views,
	}, nil
}

// pageOffset saturates at math.MaxInt so far-out pages read as past the end.
func pageOffset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}

	return (page - 1) * perPage
}

func totalPages(total int64, perPage int) int {
	if total <= 0 {
		return 0
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}
