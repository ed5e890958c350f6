package services

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// tariff is the price table of one vehicle class.
type tariff struct {
	vehicle     driver.Vehicle
	maxWeightKg decimal.Decimal
	base        decimal.Decimal
	perKm       decimal.Decimal
	perKg       decimal.Decimal
}

var tariffs = []tariff{
	{driver.VehicleBike, decimal.NewFromInt(10), decimal.NewFromInt(3), decimal.RequireFromString("0.50"), decimal.Zero},
	{driver.VehicleCar, decimal.NewFromInt(100), decimal.NewFromInt(5), decimal.RequireFromString("0.80"), decimal.RequireFromString("0.02")},
	{driver.VehicleVan, decimal.NewFromInt(1000), decimal.NewFromInt(15), decimal.RequireFromString("1.50"), decimal.RequireFromString("0.01")},
	{driver.VehicleTruck, decimal.NewFromInt(20000), decimal.NewFromInt(40), decimal.RequireFromString("3.00"), decimal.RequireFromString("0.005")},
}

// Quote is the suggested vehicle and price for a shipment.
type Quote struct {
	Vehicle driver.Vehicle
	Price   kernel.Money
}

// VehicleAdvisor suggests the smallest vehicle that can carry a load and prices the trip
// as base + distance*perKm + weight*perKg.
type VehicleAdvisor struct{}

func NewVehicleAdvisor() VehicleAdvisor {
	return VehicleAdvisor{}
}

// Quote returns ValueIsOutOfRangeError for negative input or a load heavier than the
// largest vehicle.
func (VehicleAdvisor) Quote(weightKg, distanceKm decimal.Decimal) (Quote, error) {
	if weightKg.IsNegative() {
		return Quote{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, MaxWeightKg())
	}
	if distanceKm.IsNegative() {
		return Quote{}, errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, "unbounded")
	}

	for _, t := range tariffs {
		if weightKg.GreaterThan(t.maxWeightKg) {
			continue
		}
		price, err := kernel.NewMoney(t.base.Add(distanceKm.Mul(t.perKm)).Add(weightKg.Mul(t.perKg)))
		if err != nil {
			return Quote{}, err
		}
		return Quote{Vehicle: t.vehicle, Price: price}, nil
	}

	return Quote{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, MaxWeightKg())
}

// MaxWeightKg is the capacity of the largest vehicle.
func MaxWeightKg() decimal.Decimal {
	return tariffs[len(tariffs)-1].maxWeightKg
}
