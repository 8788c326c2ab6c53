package metrika

// Vendor method names forwarded by the Dispatcher.
const (
	EventUserParams = "userParams"
	EventSetUserID  = "setUserID"
	EventReachGoal  = "reachGoal"
	EventNotBounce  = "notBounce"
)

// UserParameters describe the visitor, e.g. {"UserID": 123, "Age": 25}.
type UserParameters map[string]any

// VisitParameters are attached to a single goal or visit.
type VisitParameters map[string]any

// NotBounceOptions configure a notBounce call.
type NotBounceOptions struct {
	// Callback runs once the vendor has processed the call.
	Callback func()
	// Ctx is passed as the callback's this value.
	Ctx any
}

// Object returns the options as the vendor's plain object, omitting unset
// fields.
func (o NotBounceOptions) Object() map[string]any {
	fields := make(map[string]any, 2)
	if o.Callback != nil {
		fields["callback"] = o.Callback
	}
	if o.Ctx != nil {
		fields["ctx"] = o.Ctx
	}
	return fields
}

func userParamsArg(params UserParameters) any {
	if params == nil {
		return nil
	}
	return params
}

func visitParamsArg(params VisitParameters) any {
	if params == nil {
		return nil
	}
	return params
}

func callbackArg(callback func()) any {
	if callback == nil {
		return nil
	}
	return callback
}

func notBounceArg(options *NotBounceOptions) any {
	if options == nil {
		return nil
	}
	return *options
}
