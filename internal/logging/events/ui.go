package events

import "github.com/atomicstack/tmux-power-menu/internal/logging"

type MenuTracer struct{}

type ActionTracer struct{}

var (
	Menu   = MenuTracer{}
	Action = ActionTracer{}
)

func (MenuTracer) Toggle(expanded bool, reason string) {
	logging.Trace("menu.toggle", map[string]interface{}{"expanded": expanded, "reason": reason})
}

func (MenuTracer) Select(backend, id, label string) {
	logging.Trace("menu.select", map[string]interface{}{
		"backend": backend,
		"id":      id,
		"label":   label,
	})
}

func (MenuTracer) Cursor(backend string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"backend": backend, "cursor": cursor})
}

func (MenuTracer) Filter(backend, filter string) {
	logging.Trace("menu.filter", map[string]interface{}{"backend": backend, "filter": filter})
}

func (ActionTracer) Error(backend, id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"backend": backend, "id": id, "error": err.Error()})
}

func (ActionTracer) Success(backend, id, info string) {
	logging.Trace("action.success", map[string]interface{}{"backend": backend, "id": id, "info": info})
}
