package metrika

// Handle is the vendor's ym callable. A nil argument stands for undefined and
// keeps its position.
type Handle func(args ...any)

// Scope resolves the ym callable at call time. Implementations only read
// the handle; the vendor script owns it.
type Scope interface {
	Lookup() (Handle, bool)
}

// ScopeFunc adapts a function to Scope.
type ScopeFunc func() (Handle, bool)

// Lookup calls f.
func (f ScopeFunc) Lookup() (Handle, bool) {
	if f == nil {
		return nil, false
	}
	return f()
}

// StaticScope returns a Scope that always resolves handle. A nil handle
// models a page where the vendor script never loaded.
func StaticScope(handle Handle) Scope {
	return ScopeFunc(func() (Handle, bool) {
		return handle, handle != nil
	})
}

// JS is a raw JavaScript expression. Script-emitting scopes write it
// verbatim at any depth, including inside parameter maps and slices.
type JS string

// ObjectArg is implemented by option types that map onto a plain object in
// the vendor API.
type ObjectArg interface {
	Object() map[string]any
}
