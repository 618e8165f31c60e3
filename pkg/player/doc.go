// Package player replays a recorded step trace against a render sink. It
// implements the Idle → Loaded → Playing ⇄ Paused → Finished state machine
// with forward play, single stepping, backward reconstruction and
// scrubbing. Timing is purely cosmetic: running the whole trace with zero
// delay produces an identical final state.
package player
