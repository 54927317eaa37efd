// Package state provides the application's four observable state
// containers: auth, movies, favourites and theme.
//
// # Overview
//
// Each container holds one independent slice of application state and is
// updated only through named actions applied by a pure reducer. No
// container performs I/O; persistence and network calls are sequenced
// around dispatches by the synchronization layer in internal/app.
//
// # Concurrency Model
//
// Mutation is serialized through a single command queue per container: a
// dedicated goroutine applies actions one at a time, preserving reducer
// purity under any caller concurrency. Dispatch blocks until the action
// has been applied and returns the post-dispatch state, so workflows that
// persist after mutating read exactly what the reducer decided rather
// than re-deriving it. Reads take defensive copies, as do snapshots
// handed to subscribers, so the UI can never observe a torn or shared
// value.
//
// # Containers
//
//   - auth: session state machine Unauthenticated -> Authenticating ->
//     Authenticated; logout always returns to the initial state.
//   - movies: per-list catalog snapshots (trending, popular, top rated,
//     search) plus the movie-details record; snapshots are replaced
//     wholesale on fetch, never merged across pages.
//   - favourites: ordered list keyed by movie ID with duplicates
//     forbidden; toggle applied twice is an involution.
//   - theme: a single dark/light flag.
package state
