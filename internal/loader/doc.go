package loader

// Package loader runs keyed asynchronous loads. A new key replaces whatever
// request is in flight; only the most recently issued request may commit its
// result, regardless of the order in which fetches complete.
