// SPDX-License-Identifier: MIT
// Package: config
//
// errors.go — sentinel errors for decoding and building systems.

package config

import "errors"

var (
	// ErrEmptyDocument indicates a YAML source without a document.
	ErrEmptyDocument = errors.New("config: empty document")

	// ErrFileTooLarge indicates a system file above MaxFileSize.
	ErrFileTooLarge = errors.New("config: file too large")

	// ErrInvalid wraps every struct-tag validation failure.
	ErrInvalid = errors.New("config: invalid system")

	// ErrSpinCount indicates explicit spins whose count differs from the
	// lattice site count.
	ErrSpinCount = errors.New("config: spin count does not match lattice")

	// ErrUnknownKind indicates a lattice or term kind Build cannot construct.
	ErrUnknownKind = errors.New("config: unknown kind")
)
