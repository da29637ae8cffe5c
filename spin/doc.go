// Package spin owns the classical spin configuration shared by every
// interaction term and observable.
//
// A configuration is an ordered buffer of N unit 3-vectors (gonum r3.Vec).
// The buffer is held by a single Arena; terms and observables keep a
// pointer to the Arena, never to the buffer itself. Swapping the buffer
// (Rebind) therefore updates every holder at once:
//
//	arena := spin.Uniform(16, r3.Vec{Z: 1})
//	term, _ := interaction.NewExchange(lat, arena, 1.0)
//	...
//	_ = arena.Rebind(otherBuffer) // term now reads otherBuffer
//
// Concurrency:
//
//	The Arena performs no locking. Exactly one owner (the simulation driver)
//	mutates it; evaluations read it. Parallel readers are safe as long as no
//	writer runs concurrently.
package spin
