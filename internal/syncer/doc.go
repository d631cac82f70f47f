// Package syncer orchestrates the commit-and-push pipeline behind the sync and submit commands.
package syncer
