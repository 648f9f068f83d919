// Package gal is a device-independent graphics abstraction layer for board
// views and plots.
//
// # Overview
//
// A [Context] holds the drawing state (fill and stroke flags, colors, line
// width, layer depth and the current transform) and exposes primitive
// operations in world coordinates: lines, thick segments, circles, arcs,
// thick arcs, rectangles, polygons, curves and bitmap text. Geometry is
// accumulated into a pending path which is committed, fill first and stroke
// second, whenever a state change would otherwise alter its appearance.
//
// # Groups
//
// Between [Context.BeginGroup] and [Context.EndGroup] operations are recorded
// into a group instead of being drawn. A group is a display list that can be
// replayed any number of times with [Context.DrawGroup], recolored in place
// with [Context.ChangeGroupColor] and released with [Context.DeleteGroup].
// Recorded paths stay in user space and pick up the live view transform at
// replay, so cached groups survive zooming and panning.
//
// # Targets
//
// Drawing goes to one of two buffers owned by a [Compositor]: the main buffer
// (cached and non-cached items) and the overlay buffer. [Context.EndDrawing]
// composes main, then overlay, onto the visible surface and finally draws the
// cursor cross-hair.
//
// # Quick Start
//
//	ctx := gal.New(800, 600, gal.WithZoomFactor(4))
//	ctx.BeginDrawing()
//	ctx.SetIsFill(true)
//	ctx.SetFillColor(gal.Green)
//	ctx.DrawCircle(gg.Pt(0, 0), 20)
//	ctx.EndDrawing()
//	img := ctx.Image()
//
// Rasterising is done by github.com/gogpu/gg. A Context is not safe for
// concurrent use.
package gal
