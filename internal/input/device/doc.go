// Package device supplies the input pipeline with event batches from a
// terminal backend.
//
// The Terminal backend polls tcell for events and translates mouse button
// transitions into raw pointer Samples, carried through the pipeline as
// opaque device events. The Synthesizer is the pipeline stage that rewrites
// press and release samples into cursor events for the widget processors
// downstream; move samples and non-pointer payloads pass through untouched.
//
// Coordinates are terminal cells, which is also the coordinate space widget
// geometry is expressed in when driven from this backend.
package device
