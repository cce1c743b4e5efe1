package event

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/service"
)

// LogDispatcher publishes domain events to the structured log. Each event is
// stamped with a fresh event id so individual occurrences can be traced.
type LogDispatcher struct {
	logger *log.Logger
}

func NewLogDispatcher(logger *log.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(e service.Event) error {
	d.logger.WithFields(log.Fields{
		"event_id": uuid.New().String(),
		"event":    e.Type(),
		"payload":  e,
	}).Info("domain event")
	return nil
}
