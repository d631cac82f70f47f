// Package ui provides helpers for formatting human-readable console output.
//
// It translates command lifecycle events into concise messages for CLI users
// and renders the success, failure, and notice banners shown when a sync run
// reaches a terminal state.
package ui
