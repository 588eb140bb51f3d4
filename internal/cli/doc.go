// Package cli implements the command-line interface for hackfeed.
//
// The cli package provides the Cobra-based CLI that runs the scrape
// pipeline: fetch every enabled source, merge and trim the records, diff
// against the previously written feed, atomically rewrite the feed file,
// and optionally notify about new entries. It supports one-shot and
// interval-loop execution and text or JSON run summaries.
package cli
