package events

import (
	platformevents "salesspark_backend/platform/events"
	"salesspark_backend/platform/logger"
)

// InMemoryBus delivers SalesSpark events inside one process.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus returns the bus shared by the api and scheduler binaries.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
