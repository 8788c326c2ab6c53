package metrika

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/rs/zerolog"
)

// EventsScriptID identifies the inline script written by ScriptScope.
const EventsScriptID = "metrika-events"

// ScriptScope is a server-side Scope. Its handle is always present and
// records calls; Component writes them as ym(...) statements for the
// browser, after the loader has defined the vendor stub.
type ScriptScope struct {
	mu     sync.Mutex
	calls  [][]any
	logger zerolog.Logger
}

// NewScriptScope returns an empty scope. Arguments that cannot cross into
// the browser are logged at debug level and written as undefined.
func NewScriptScope(logger zerolog.Logger) *ScriptScope {
	return &ScriptScope{logger: logger}
}

// Lookup returns the recording handle.
func (s *ScriptScope) Lookup() (Handle, bool) {
	if s == nil {
		return nil, false
	}
	return s.record, true
}

func (s *ScriptScope) record(args ...any) {
	call := make([]any, len(args))
	copy(call, args)
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

// Calls returns the recorded calls without draining them.
func (s *ScriptScope) Calls() [][]any {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]any, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *ScriptScope) drain() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := s.calls
	s.calls = nil
	return calls
}

// Script drains the recorded calls and returns them as script statements.
func (s *ScriptScope) Script() (string, error) {
	if s == nil {
		return "", nil
	}
	var b strings.Builder
	for _, call := range s.drain() {
		line, err := s.statement(call)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Component writes the drained calls as script#metrika-events. Nothing is
// written when no calls were recorded.
func (s *ScriptScope) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		script, err := s.Script()
		if err != nil {
			return err
		}
		if script == "" {
			return nil
		}
		return tag.Element{
			Name:  "script",
			Attrs: []tag.Attr{{Key: "id", Value: EventsScriptID}},
			Inner: "\n" + script,
		}.Render(ctx, w)
	})
}

func (s *ScriptScope) statement(call []any) (string, error) {
	args := make([]string, 0, len(call))
	for idx, arg := range call {
		encoded, err := s.encodeArg(arg)
		if err != nil {
			return "", fmt.Errorf("encode ym argument %d: %w", idx, err)
		}
		args = append(args, encoded)
	}
	return tag.GlobalName + "(" + strings.Join(args, ", ") + ");", nil
}

func (s *ScriptScope) encodeArg(arg any) (string, error) {
	switch value := arg.(type) {
	case nil:
		return "undefined", nil
	case JS:
		return string(value), nil
	case func():
		s.logger.Debug().Msg("metrika: dropping callback from server-side call")
		return "undefined", nil
	case ObjectArg:
		return s.encodeObject(value.Object())
	case map[string]any:
		return s.encodeObject(value)
	case VisitParameters:
		return s.encodeObject(value)
	case UserParameters:
		return s.encodeObject(value)
	case []any:
		return s.encodeArray(value)
	}
	encoded, err := json.Marshal(arg)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (s *ScriptScope) encodeArray(items []any) (string, error) {
	parts := make([]string, 0, len(items))
	for idx, item := range items {
		encoded, err := s.encodeArg(item)
		if err != nil {
			return "", fmt.Errorf("index %d: %w", idx, err)
		}
		parts = append(parts, encoded)
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}

func (s *ScriptScope) encodeObject(fields map[string]any) (string, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := fields[key]
		if value == nil {
			continue
		}
		if _, ok := value.(func()); ok {
			s.logger.Debug().Str("field", key).Msg("metrika: dropping callback from server-side call")
			continue
		}
		name, err := json.Marshal(key)
		if err != nil {
			return "", err
		}
		encoded, err := s.encodeArg(value)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", key, err)
		}
		parts = append(parts, string(name)+":"+encoded)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}
