package cmd

import "errors"

// Sentinel errors for package cmd.
var (
	// Validation errors, raised before any file is opened
	ErrMissingPath  = errors.New("both input and output paths are required")
	ErrSamePath     = errors.New("input and output refer to the same file")
	ErrExpectedFile = errors.New("expected a regular file")

	// Command errors
	ErrAutoCompress   = errors.New("codec \"auto\" is only valid for decompression")
	ErrVerifyMismatch = errors.New("round trip does not reproduce the input")
)
