// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - DriverSelector: picks the best free, eligible driver for a Pending order and assigns it
//   - VehicleAdvisor: suggests a vehicle class and a price for a load and a distance
package services
