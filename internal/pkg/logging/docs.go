// Package logging builds the process-wide structured logger.
//
// Records are JSON lines written by log/slog, with the source position attached. The
// logger is created once in cmd/app and handed to every component through its
// constructor. Components add their own name with
//
//	logger = logger.With("component", "dispatch_job")
//
// so that a record can always be traced back to the http adapter, a job, a broker
// publisher or the websocket hub.
package logging
