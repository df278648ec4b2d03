// Package batch splits work over vehicles into fixed-size batches.
//
// Recommendation scoring and fleet analysis both evaluate many independent
// vehicles; batching bounds memory per step and lets scoring run with a
// concurrency limit while keeping results in input order.
//   - Configurable batch size (default 50 items per batch)
//   - Progress tracking with callbacks for logging
//   - Context-aware cancellation
package batch
