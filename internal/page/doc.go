// Package page implements the quote screen: a two-state loading machine
// (Idle, Loading) over a Retriever, and two Bubble Tea views that render it.
//
// MainPage drives the machine through a Controller. MainPageWithoutController
// drives the same machine inline. Both render identically and notify the
// OnNewQuote observer exactly once per completed, non-empty load.
package page
