package observability

import (
	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// LogObserver writes events to a charmbracelet logger. Missing-source events
// log at warn level, everything else at debug.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates a LogObserver; a nil logger uses log.Default().
func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnEvent(event types.Event) {
	attrs := make([]any, 0, 2+len(event.Data)*2)
	attrs = append(attrs, "table", event.TableID)
	for k, v := range event.Data {
		attrs = append(attrs, k, v)
	}
	if event.Type == types.EventSourceMissing {
		o.logger.Warn(string(event.Type), attrs...)
		return
	}
	o.logger.Debug(string(event.Type), attrs...)
}
