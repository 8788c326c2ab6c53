// Package metrika mounts the Yandex Metrika tag into server-rendered pages
// and forwards client events to the vendor's ym callable.
//
// All state lives in a Page. The first tag id rendered into a Page becomes
// the target of every later event sent through that Page's Dispatcher;
// later mounts with a different id do not change it. Pages are created per
// request by Middleware and travel in the request context, so concurrent
// renders never share a registered id.
//
// Events sent before any tag was mounted are dropped with a warning. Events
// sent while the ym callable is not present in the Scope (the vendor script
// is still loading or was blocked) are dropped silently.
package metrika
