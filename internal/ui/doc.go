// Package ui provides the shared primitives for composing the quote screen
// with Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update and view (Elm-style)
//   - Unmounter: optional teardown hook for views that own async work
//   - Styles: the fixed palette shared by every view
//   - RenderHelp: compact key hint bar built on bubbles/help
package ui
