package events

import "github.com/atomicstack/feedview/internal/logging"

type AppTracer struct{}

type SourceTracer struct{}

var (
	App    = AppTracer{}
	Source = SourceTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (SourceTracer) Closed(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.closed", payload)
}

func (SourceTracer) Resize(width, height int) {
	logging.Trace("source.resize", map[string]interface{}{"width": width, "height": height})
}
