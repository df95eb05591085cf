package events

import (
	"time"

	"github.com/atomicstack/tmux-power-menu/internal/logging"
)

type ComponentTracer struct{}

var Component = ComponentTracer{}

func (ComponentTracer) Launch(id, name string) {
	logging.Trace("component.launch", map[string]interface{}{"id": id, "name": name})
}

func (ComponentTracer) Ready(id, name string, took time.Duration) {
	logging.Trace("component.ready", map[string]interface{}{
		"id":   id,
		"name": name,
		"ms":   took.Milliseconds(),
	})
}

func (ComponentTracer) Failed(id, name string, err error) {
	payload := map[string]interface{}{"id": id, "name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("component.failed", payload)
}

func (ComponentTracer) Shutdown(id, name string) {
	logging.Trace("component.shutdown", map[string]interface{}{"id": id, "name": name})
}
