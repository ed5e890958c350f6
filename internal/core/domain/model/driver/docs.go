// Package driver holds the Driver aggregate: account status, document verification,
// vehicle and the rating summary built from rated orders.
package driver
