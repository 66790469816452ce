package http

import (
	"time"

	"levaai/internal/core/application/usecases/queries"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	ID              string    `json:"id"`
	SenderID        string    `json:"senderId"`
	DriverID        *string   `json:"driverId,omitempty"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	ProductType     string    `json:"productType"`
	Dimensions      string    `json:"dimensions"`
	Weight          string    `json:"weight"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	LatLng          *LatLng   `json:"latLng,omitempty"`
}

func toOrder(r queries.OrderResponse) Order {
	o := Order{
		ID:              r.ID,
		SenderID:        r.SenderID,
		DriverID:        r.DriverID,
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		ProductType:     r.ProductType,
		Dimensions:      r.Dimensions,
		Weight:          r.Weight,
		Description:     r.Description,
		Price:           r.Price,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
	if r.Lat != nil && r.Lng != nil {
		o.LatLng = &LatLng{Lat: *r.Lat, Lng: *r.Lng}
	}
	return o
}

type NewOrder struct {
	QuoteID         string  `json:"quoteId"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
	ProductType     string  `json:"productType"`
	Dimensions      string  `json:"dimensions"`
	Weight          string  `json:"weight"`
	Description     string  `json:"description"`
	LatLng          *LatLng `json:"latLng"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type EstimateRequest struct {
	Product    string `json:"product"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Distance   string `json:"distance"`
}

type Estimate struct {
	QuoteID        string    `json:"quoteId"`
	Category       string    `json:"category"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	Reasoning      string    `json:"reasoning"`
	RiskLevel      string    `json:"riskLevel"`
	Provenance     string    `json:"provenance"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

type DriverDetails struct {
	FullName     string `json:"fullName"`
	CPF          string `json:"cpf"`
	CNH          string `json:"cnh"`
	VehicleModel string `json:"vehicleModel"`
	VehiclePlate string `json:"vehiclePlate"`
}

type Profile struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Role             string         `json:"role"`
	Rating           float64        `json:"rating"`
	Balance          float64        `json:"balance"`
	IsDriverVerified bool           `json:"isDriverVerified"`
	DriverDetails    *DriverDetails `json:"driverDetails,omitempty"`
	ActingAsDriver   bool           `json:"actingAsDriver"`
}

func toProfile(r queries.ProfileResponse) Profile {
	p := Profile{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Role:             r.Role,
		Rating:           r.Rating,
		Balance:          r.Balance,
		IsDriverVerified: r.IsDriverVerified,
		ActingAsDriver:   r.ActingAsDriver,
	}
	if d := r.DriverDetails; d != nil {
		p.DriverDetails = &DriverDetails{
			FullName:     d.FullName,
			CPF:          d.CPF,
			CNH:          d.CNH,
			VehicleModel: d.VehicleModel,
			VehiclePlate: d.VehiclePlate,
		}
	}
	return p
}

type ToggleResult struct {
	Decision       string `json:"decision"`
	ActingAsDriver bool   `json:"actingAsDriver"`
}

type SupportQuestion struct {
	Question string `json:"question"`
}

type SupportAnswer struct {
	Answer string `json:"answer"`
}
