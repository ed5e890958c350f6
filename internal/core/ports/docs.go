// Package ports declares the contracts between the application core and its adapters:
// repositories and the unit of work for writes, readers for queries, the event
// publisher and the password hasher.
package ports
