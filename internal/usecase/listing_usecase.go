package usecase

import "context"

// ListProfilesInput selects one page; both values are 1-based and positive.
type ListProfilesInput struct {
	Page    int
	PerPage int
}

// ListProfilesOutput is one page of profiles plus pagination totals.
type ListProfilesOutput struct {
	Total       int64          `json:"total"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Users       []*ProfileView `json:"users"`
}

// ListingUsecase defines paginated profile listing.
type ListingUsecase interface {
	ListProfiles(ctx context.Context, input ListProfilesInput) (*ListProfilesOutput, error)
}
