// Package ui is the Bubble Tea shell hosting the selectui pages.
//
// Core abstractions:
//   - View: a screen with its own init, update and view (Elm-style)
//   - Page: a View the shell mounts into the shared document while active
//   - Router: page constructors by name, in registration order
//   - ViewStack: navigation history (push on navigate, pop on back)
//   - FocusManager: tab order across form fields
//   - KeyHandler: spacemacs-style leader key sequences
//
// Every frame is passed through document.Document.Scan so that mouse input
// can be resolved to the node drawn under the pointer.
package ui
