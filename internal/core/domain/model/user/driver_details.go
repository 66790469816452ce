package user

import (
	"errors"
	"strings"

	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var (
	ErrDriverDetailsIsNotConstructed = errors.New("DriverDetails must be created via NewDriverDetails constructor")

	ErrFullNameIsRequired     = errs.NewValueIsRequiredError("fullName")
	ErrCPFIsRequired          = errs.NewValueIsRequiredError("cpf")
	ErrCNHIsRequired          = errs.NewValueIsRequiredError("cnh")
	ErrVehicleModelIsRequired = errs.NewValueIsRequiredError("vehicleModel")
	ErrVehiclePlateIsRequired = errs.NewValueIsRequiredError("vehiclePlate")
)

// DriverDetails is what a driver submits for verification. Fields are opaque:
// no CPF checksum, license or plate format is enforced, only presence.
type DriverDetails struct { //nolint:recvcheck //using for validation
	fullName     string
	cpf          string
	cnh          string
	vehicleModel string
	vehiclePlate string

	guard guard.ConstructorGuard
}

func NewDriverDetails(fullName, cpf, cnh, vehicleModel, vehiclePlate string) (DriverDetails, error) {
	d := DriverDetails{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required(&d.fullName, fullName, ErrFullNameIsRequired),
		required(&d.cpf, cpf, ErrCPFIsRequired),
		required(&d.cnh, cnh, ErrCNHIsRequired),
		required(&d.vehicleModel, vehicleModel, ErrVehicleModelIsRequired),
		required(&d.vehiclePlate, vehiclePlate, ErrVehiclePlateIsRequired),
	); err != nil {
		return DriverDetails{}, err
	}

	return d, nil
}

func (d DriverDetails) Validate() error {
	return d.guard.Validate(ErrDriverDetailsIsNotConstructed)
}

func (d DriverDetails) FullName() string     { return d.fullName }
func (d DriverDetails) CPF() string          { return d.cpf }
func (d DriverDetails) CNH() string          { return d.cnh }
func (d DriverDetails) VehicleModel() string { return d.vehicleModel }
func (d DriverDetails) VehiclePlate() string { return d.vehiclePlate }

func required(dst *string, value string, errIfBlank error) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errIfBlank
	}
	*dst = v
	return nil
}
