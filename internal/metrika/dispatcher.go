package metrika

import "github.com/rs/zerolog"

const notInitializedMessage = "metrika: tag has not been initialized"

// Dispatcher forwards events to the ym callable using the tag id held by its
// registry.
type Dispatcher struct {
	registry *Registry
	scope    Scope
	logger   zerolog.Logger
}

// NewDispatcher builds a dispatcher reading the tag id from registry and the
// callable from scope.
func NewDispatcher(registry *Registry, scope Scope, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, scope: scope, logger: logger}
}

// SendEvent calls ym(tagID, event, args...). Without a registered tag id the
// call is dropped with a warning; without a resolvable handle it is dropped
// silently.
func (d *Dispatcher) SendEvent(event string, args ...any) {
	if d == nil {
		return
	}
	tagID, ok := d.registry.TagID()
	if !ok {
		d.logger.Warn().Str("event", event).Msg(notInitializedMessage)
		return
	}
	if d.scope == nil {
		return
	}
	handle, ok := d.scope.Lookup()
	if !ok || handle == nil {
		return
	}
	call := make([]any, 0, len(args)+2)
	call = append(call, tagID, event)
	call = append(call, args...)
	handle(call...)
}

// UserParams reports visitor attributes.
func (d *Dispatcher) UserParams(params UserParameters) {
	d.SendEvent(EventUserParams, userParamsArg(params))
}

// SetUserID reports the site's own identifier for the visitor.
func (d *Dispatcher) SetUserID(userID string) {
	d.SendEvent(EventSetUserID, userID)
}

// ReachGoal reports a goal. Nil params and callback are forwarded as
// undefined in their positions.
func (d *Dispatcher) ReachGoal(target string, params VisitParameters, callback func()) {
	d.SendEvent(EventReachGoal, target, visitParamsArg(params), callbackArg(callback))
}

// NotBounce marks the visit as not a bounce.
func (d *Dispatcher) NotBounce(options *NotBounceOptions) {
	d.SendEvent(EventNotBounce, notBounceArg(options))
}
