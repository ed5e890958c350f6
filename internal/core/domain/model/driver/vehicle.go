package driver

import "logistics/internal/pkg/errs"

// Vehicle is the kind of vehicle a driver operates.
type Vehicle int

const (
	VehicleUnknown Vehicle = iota
	VehicleBike
	VehicleCar
	VehicleVan
	VehicleTruck
)

var vehicleNames = map[Vehicle]string{
	VehicleBike:  "Bike",
	VehicleCar:   "Car",
	VehicleVan:   "Van",
	VehicleTruck: "Truck",
}

// Vehicles lists the vehicles from the smallest to the largest.
func Vehicles() []Vehicle {
	return []Vehicle{VehicleBike, VehicleCar, VehicleVan, VehicleTruck}
}

func ParseVehicle(s string) (Vehicle, error) {
	for v, name := range vehicleNames {
		if name == s {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidError("vehicle")
}

func (v Vehicle) String() string {
	if name, ok := vehicleNames[v]; ok {
		return name
	}
	return "Unknown"
}

func (v Vehicle) Validate() error {
	if _, ok := vehicleNames[v]; !ok {
		return errs.NewValueIsInvalidError("vehicle")
	}
	return nil
}
