package queries

import (
	"context"
	"errors"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	userID kernel.UserID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(userID kernel.UserID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

type DriverDetailsResponse struct {
	FullName     string
	CPF          string
	CNH          string
	VehicleModel string
	VehiclePlate string
}

type ProfileResponse struct {
	ID               string
	Name             string
	Email            string
	Role             string
	Rating           float64
	Balance          float64
	IsDriverVerified bool
	DriverDetails    *DriverDetailsResponse
	ActingAsDriver   bool
}

// GetProfileQueryHandler returns the user together with the session mode. A
// user without a stored session is in sender mode.
type GetProfileQueryHandler struct {
	readModels ReadModelFactory
}

func NewGetProfileQueryHandler(readModels ReadModelFactory) GetProfileQueryHandler {
	return GetProfileQueryHandler{readModels: readModels}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	rm := h.readModels.Create()
	u, err := rm.UserRepository().Get(ctx, query.userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	actingAsDriver := false
	sess, err := rm.SessionRepository().Get(ctx, query.userID)
	switch {
	case err == nil:
		actingAsDriver = sess.ActingAsDriver()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return ProfileResponse{}, err
	}

	r := ProfileResponse{
		ID:               u.ID().String(),
		Name:             u.Name(),
		Email:            u.Email(),
		Role:             u.Role().String(),
		Rating:           u.Rating(),
		Balance:          u.Balance().Float64(),
		IsDriverVerified: u.IsDriverVerified(),
		ActingAsDriver:   actingAsDriver,
	}
	if d := u.DriverDetails(); d != nil {
		r.DriverDetails = &DriverDetailsResponse{
			FullName:     d.FullName(),
			CPF:          d.CPF(),
			CNH:          d.CNH(),
			VehicleModel: d.VehicleModel(),
			VehiclePlate: d.VehiclePlate(),
		}
	}
	return r, nil
}
