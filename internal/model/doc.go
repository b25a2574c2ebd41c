package model

// Package model defines domain data structures used across the app: groups,
// calendar dates and week windows, the weekly schedule returned by the
// remote API, favorite sets, and the load state of a schedule request.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
