// Package web hosts a small browser-facing service that mounts the analytics
// tag on every page and reports goals submitted through a form.
//
// Each request gets its own metrika.Page, so the tag id registered while
// rendering one response is never visible to another. Goals reported on the
// server are written into the response as ym(...) calls that run after the
// loader has defined the vendor stub.
package web
