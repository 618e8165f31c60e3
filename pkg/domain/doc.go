// Package domain contains the core value types of the chalkline engine:
// the Step record and its closed kind enum, the Trace produced by a solve
// pass, session state, lifecycle events and the error taxonomy.
//
// Nothing in this package performs IO or touches presentation. Solvers emit
// Steps, players replay them, validators compare learner actions against
// them; all three share only these types.
package domain
