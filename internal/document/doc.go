// Package document models the rendered element tree of a terminal page.
//
// Widgets build a tree of Nodes under Document.Body and wrap the text they
// render for each node with Mark. After the full frame is composed the host
// calls Scan, which strips the markers and records the screen rectangle of
// every marked node. Mouse messages are then resolved to the deepest attached
// node under the cursor and dispatched like browser events: node handlers
// bubble from the target up to the body, then document-level listeners run.
//
// Everything here runs on the Bubble Tea update goroutine; nothing is safe
// for concurrent use.
package document
