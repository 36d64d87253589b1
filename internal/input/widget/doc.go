// Package widget provides the rectangular hit-test and capture state
// machine of the input pipeline.
//
// A Button is a stateful processor bound to an axis-aligned rectangle. Left
// pointer presses inside the rectangle are accepted and captured: from then
// on the button owns interpretation of left-button events until the matching
// release arrives, and the release location (not the press location) decides
// whether the interaction succeeded (released) or was aborted (canceled).
// Every event the button does not understand passes through unchanged.
package widget
