// SPDX-License-Identifier: MIT
// Package: config
//
// parse.go — YAML decoding and struct-tag validation.
//
// Contract:
//   • Unknown keys are decode errors (yaml.v3 KnownFields).
//   • Fixed-length vectors reject sequences of any other length.
//   • Validation failures wrap ErrInvalid and keep the validator's field
//     messages.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds the size of a system file read by Load.
const MaxFileSize = 1 << 20

const (
	methodLoad     = "Load"
	methodParse    = "Parse"
	methodValidate = "Validate"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses the system file at path.
func Load(path string) (*System, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %s is %d bytes: %w", methodLoad, path, info.Size(), ErrFileTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}

	return Parse(data)
}

// Parse decodes one YAML document and validates it.
func Parse(data []byte) (*System, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sys System
	if err := dec.Decode(&sys); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", methodParse, ErrEmptyDocument)
		}
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	return &sys, nil
}

// Validate checks the struct tags of s.
func (s *System) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, ErrInvalid, err)
	}

	return nil
}
