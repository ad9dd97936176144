package event

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Script returns a producer that replays the key script read from r. Each
// event is spaced by at least pace.
//
// Script lines are one of:
//
//	# comment
//	type <text>          one Char key per character of text
//	resize <w> <h>       a resize event
//	<key> [<key>...]     key names understood by ParseKey
func Script(r io.Reader, pace time.Duration) Producer {
	return func(ctx context.Context, emit func(Event) bool) error {
		limiter := newThrottle(pace)
		scanner := bufio.NewScanner(r)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			evts, err := ParseScriptLine(scanner.Text())
			if err != nil {
				return fmt.Errorf("script line %d: %w", lineNo, err)
			}
			for _, evt := range evts {
				if !limiter.wait(ctx) || !emit(evt) {
					return nil
				}
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		return nil
	}
}

// ParseScriptLine converts a single script line into events.
func ParseScriptLine(line string) ([]Event, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	if text, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "type "); ok {
		evts := make([]Event, 0, len(text))
		for _, r := range text {
			evts = append(evts, KeyEvent(Char(r)))
		}
		return evts, nil
	}
	fields := strings.Fields(trimmed)
	if fields[0] == "resize" {
		if len(fields) != 3 {
			return nil, fmt.Errorf("resize expects width and height, got %q", trimmed)
		}
		width, err := strconv.Atoi(fields[1])
		if err != nil || width < 0 {
			return nil, fmt.Errorf("invalid width %q", fields[1])
		}
		height, err := strconv.Atoi(fields[2])
		if err != nil || height < 0 {
			return nil, fmt.Errorf("invalid height %q", fields[2])
		}
		return []Event{ResizeEvent(width, height)}, nil
	}
	evts := make([]Event, 0, len(fields))
	for _, name := range fields {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		evts = append(evts, KeyEvent(k))
	}
	return evts, nil
}
