// Package autoposition keeps 2D overlay boxes tethered to the screen
// projection of named 3D anchors.
//
// An Engine owns one record per mounted overlay element. Every tick it
// re-projects all anchors through the scene camera, places floating boxes
// near their anchor without overlapping each other or pinned boxes, and
// notifies each box through its callbacks when its position or leader line
// needs to be redrawn. Pinned boxes are positioned by their own grid dock and
// only report their observed position back through OnBoxMove.
//
// The engine is not safe for concurrent use. It is driven from the host's
// frame loop, either an independent FrameLoop or a RenderHook installed on
// the scene renderer, and all registry mutations happen on that same
// goroutine.
package autoposition
