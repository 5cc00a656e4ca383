// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The central shape here is trigger-then-poll: operations fire a
// one-way webhook carrying a fresh correlation id, then watch the
// spreadsheet datastore until a matching result row appears or the
// poll ceiling passes.
package services
