// Package ports declares the interfaces between the chalkline core and its
// adapters: solvers, render sinks, session stores, distributed lockers and
// monk-mode progress checkers. Adapters depend on this package; the core
// never depends on an adapter.
package ports
