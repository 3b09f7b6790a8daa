// Package executor resolves an action against a target path and runs it.
//
// A run is: validate the definition, turn the target into a local path,
// build a placeholder.Context, resolve the command (quoted) and working
// directory (unquoted), check the directory exists, then spawn exactly one
// shell invocation bounded by a timeout. Failures are always reported to
// the Notifier; success notifications honour the action's
// show_notification flag. There are no retries and no queue: concurrent
// Execute calls are independent.
package executor
