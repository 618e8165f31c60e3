// Package observability bridges engine lifecycle hooks to Prometheus
// collectors: solves, trace sizes, steps played and monk-mode validation
// outcomes.
package observability
