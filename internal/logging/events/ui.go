package events

import "github.com/atomicstack/feedview/internal/logging"

type StackTracer struct{}

type UITracer struct{}

type CommandLineTracer struct{}

var (
	Stack       = StackTracer{}
	UI          = UITracer{}
	CommandLine = CommandLineTracer{}
)

func (StackTracer) Push(id, title string, depth int) {
	logging.Trace("stack.push", map[string]interface{}{"dialog": id, "title": title, "depth": depth})
}

func (StackTracer) Pop(id string, depth int) {
	logging.Trace("stack.pop", map[string]interface{}{"dialog": id, "depth": depth})
}

func (StackTracer) Cycle(id string, direction string) {
	logging.Trace("stack.cycle", map[string]interface{}{"dialog": id, "direction": direction})
}

func (StackTracer) Quit(id string) {
	logging.Trace("stack.quit", map[string]interface{}{"dialog": id})
}

func (UITracer) ListCursor(dialogID string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"dialog": dialogID, "cursor": cursor})
}

func (UITracer) Scroll(dialogID string, offset int) {
	logging.Trace("detail.scroll", map[string]interface{}{"dialog": dialogID, "offset": offset})
}

func (UITracer) Open(dialogID string, index int, label string) {
	logging.Trace("list.open", map[string]interface{}{"dialog": dialogID, "index": index, "label": label})
}

func (CommandLineTracer) Open(dialogID string) {
	logging.Trace("cmdline.open", map[string]interface{}{"dialog": dialogID})
}

func (CommandLineTracer) Submit(dialogID, text string) {
	logging.Trace("cmdline.submit", map[string]interface{}{"dialog": dialogID, "text": text})
}

func (CommandLineTracer) Cancel(dialogID string) {
	logging.Trace("cmdline.cancel", map[string]interface{}{"dialog": dialogID})
}

func (CommandLineTracer) Edit(dialogID, text string, cursor int) {
	logging.Trace("cmdline.edit", map[string]interface{}{"dialog": dialogID, "text": text, "cursor": cursor})
}
