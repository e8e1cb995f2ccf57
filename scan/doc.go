/*
Package scan provides the immutable scan descriptor and the pull-based,
backpressure-aware stream reader over a remote paginated scan.

The reader is a five-state machine:

	Idle → Reading → Paused → Reading → … → Exhausted
	                      ↘ Errored

A consumer drives it by calling Pull. While Reading, the reader fetches
pages through the supplied ChunkProvider capability and pushes each
non-empty batch to the Consumer in fetch order. A consumer that returns
false from OnBatch pauses the reader; the next Pull resumes fetching from
the stored continuation token. Empty intermediate pages advance the cursor
without pushing anything, so batch boundaries always reflect the provider's
non-empty pages.

Exhausted and Errored are terminal. A failed page fetch ends the sequence
and delivers exactly one error; the reader never retries internally.
Callers that need resilience re-issue a new scan from the last observed
continuation token.

	reader := scan.NewStreamReader(provider, scan.New("events"), consumer, logger)
	reader.Pull(ctx)
	// …consumer regains capacity…
	reader.Pull(ctx)
*/
package scan
