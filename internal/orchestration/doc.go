// Package orchestration runs several multiplication algorithms on the same
// operands concurrently and checks that their products agree. Presentation
// stays behind the ProgressReporter and ResultPresenter interfaces.
package orchestration
