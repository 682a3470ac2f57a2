package domain

// ExitCodeFromHash exposes the hash-to-code mapping for testing the zero guard.
var ExitCodeFromHash = exitCodeFromHash
