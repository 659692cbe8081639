// Package device abstracts fingerprint terminal access behind a gateway
// interface. The engine only ever sees scan records; how they are pulled
// off the hardware is an implementation detail of the gateway.
package device

import (
	"context"
	"time"
)

// Record is a single scan pulled from a terminal's history. DeviceUserID
// is the terminal-local enrollment number, not an employee ID; the
// ingestor resolves the mapping per company.
type Record struct {
	DeviceUserID string
	Timestamp    time.Time
}

// Gateway fetches scan history from a single terminal.
type Gateway interface {
	// FetchRecords returns every scan the terminal still holds at or
	// after the given instant, in no guaranteed order.
	FetchRecords(ctx context.Context, host string, port int, since time.Time) ([]Record, error)
}
