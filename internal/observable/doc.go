package observable

// Package observable implements a mutable value with a subscription stream.
// Subscribers receive the current value immediately on subscription and then
// every committed change, in commit order.
