// Package scene provides an ordered draw-command recorder with
// compositing layers.
//
// A Scene accumulates typed commands (fills, strokes, layer push/pop,
// blurred rounded-rect fills) and replays them to any Backend. Typed
// command structs keep recordings inspectable and debuggable, which the
// compositor tests rely on.
//
// The recorder guarantees only intra-call ordering: commands replay in
// the order they were recorded, and layers nest last-pushed
// first-popped. There is no cross-scene or cross-frame state.
package scene
