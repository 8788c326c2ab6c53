//go:build js && wasm

// Package jsglobal resolves the vendor's ym callable from the browser's
// global object for Go code compiled to WebAssembly.
package jsglobal

import (
	"encoding/json"
	"syscall/js"

	"github.com/louisbranch/metrika/internal/metrika"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/rs/zerolog"
)

// Scope reads a callable from the global object on every lookup. It never
// writes the global; the vendor script owns it.
type Scope struct {
	// Name of the global; defaults to tag.GlobalName.
	Name string
	// Logger reports arguments that cannot be converted; nil discards.
	Logger *zerolog.Logger
}

var _ metrika.Scope = Scope{}

// Lookup returns the global callable when the vendor script has attached it.
func (s Scope) Lookup() (metrika.Handle, bool) {
	fn := js.Global().Get(s.name())
	if fn.Type() != js.TypeFunction {
		return nil, false
	}
	return func(args ...any) {
		fn.Invoke(s.convertArgs(args)...)
	}, true
}

func (s Scope) name() string {
	if s.Name == "" {
		return tag.GlobalName
	}
	return s.Name
}

func (s Scope) logger() *zerolog.Logger {
	if s.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return s.Logger
}

func (s Scope) convertArgs(args []any) []any {
	out := make([]any, len(args))
	for idx, arg := range args {
		out[idx] = s.toJS(arg)
	}
	return out
}

func (s Scope) toJS(arg any) js.Value {
	switch value := arg.(type) {
	case nil:
		return js.Undefined()
	case js.Value:
		return value
	case string, bool, int, int64, float64:
		return js.ValueOf(value)
	case func():
		return callbackOnce(value)
	case metrika.JS:
		return js.Global().Get("Function").New("return (" + string(value) + ");").Invoke()
	case metrika.ObjectArg:
		return s.object(value.Object())
	case map[string]any:
		return s.object(value)
	case metrika.VisitParameters:
		return s.object(value)
	case metrika.UserParameters:
		return s.object(value)
	case []any:
		arr := js.Global().Get("Array").New(len(value))
		for idx, item := range value {
			arr.SetIndex(idx, s.toJS(item))
		}
		return arr
	}
	encoded, err := json.Marshal(arg)
	if err != nil {
		s.logger().Warn().Err(err).Msg("metrika: argument cannot be passed to ym")
		return js.Undefined()
	}
	return js.Global().Get("JSON").Call("parse", string(encoded))
}

func (s Scope) object(fields map[string]any) js.Value {
	obj := js.Global().Get("Object").New()
	for key, field := range fields {
		if field == nil {
			continue
		}
		obj.Set(key, s.toJS(field))
	}
	return obj
}

// callbackOnce wraps fn so the Go function is released after its first
// invocation.
func callbackOnce(fn func()) js.Value {
	var wrapped js.Func
	wrapped = js.FuncOf(func(js.Value, []js.Value) any {
		defer wrapped.Release()
		fn()
		return nil
	})
	return wrapped.Value
}
