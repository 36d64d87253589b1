// Package input implements the pointer-event transformation pipeline.
//
// The input package rewrites batches of low-level pointer events into
// higher-level widget events while preserving event order and count. One
// input cycle (typically one frame) produces one ordered batch, which is
// threaded through a chain of processors; each processor may replace some
// events with derived ones and must pass everything else through untouched.
//
// # Architecture
//
// The pipeline consists of a small set of cooperating pieces:
//
//   - Event: the shared vocabulary, a tagged union of opaque device events
//     and semantic intermediate events (cursor press/release, widget
//     press/release/cancel)
//   - Processor: the capability every pipeline stage implements, a 1:1
//     in-order transform over a batch
//   - Pipeline: the dispatcher that owns an ordered list of processors and
//     folds one batch through all of them in registration order
//
// Concrete processors live in subpackages: widget provides the rectangular
// hit-test/capture state machine, device provides the terminal backend and
// the raw-sample synthesizer.
//
// # Batch semantics
//
// A processor's output batch always has the same length as its input batch;
// element i of the output is either element i of the input unchanged or a
// single replacement derived from it. Processors observe events strictly in
// batch order and may mutate their own state between events, so a press and
// its matching release inside one batch resolve as two sequential state
// transitions.
//
// # Usage
//
//	p := input.NewPipeline()
//	p.Register(device.NewSynthesizer())
//	p.Register(widget.New(3, 40, 40, 20, 20))
//
//	for running {
//	    batch = p.Process(batch)
//	    // react to WidgetPressed/Released/Canceled events
//	}
package input
