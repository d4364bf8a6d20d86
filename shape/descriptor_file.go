// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// descriptor_file.go - TOML encoding of descriptor lists.
//
// File layout: an array of tables named "wave", one per descriptor.
//
//	[[wave]]
//	function = "gaussian"
//	span = 100e-9
//	sample_rate = 1e9
//	name = "g"
//	args = { peak_x = 50e-9, sigma = 10e-9 }
//
// Unknown keys are rejected so that typos in argument tables do not pass
// silently.

package shape

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrDescriptorFile indicates malformed TOML or keys that are not part of
// the descriptor layout.
var ErrDescriptorFile = errors.New("shape: invalid descriptor file")

// descriptorFile is the on-disk document.
type descriptorFile struct {
	Wave []Descriptor `toml:"wave"`
}

// DecodeDescriptors parses a TOML document held in a string.
func DecodeDescriptors(doc string) ([]Descriptor, error) {
	var f descriptorFile
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, fmt.Errorf("DecodeDescriptors: %v: %w", err, ErrDescriptorFile)
	}

	return checkUndecoded("DecodeDescriptors", md, f.Wave)
}

// LoadDescriptorsFile parses the TOML file at path.
func LoadDescriptorsFile(path string) ([]Descriptor, error) {
	var f descriptorFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("LoadDescriptorsFile %s: %v: %w", path, err, ErrDescriptorFile)
	}

	return checkUndecoded("LoadDescriptorsFile", md, f.Wave)
}

// EncodeDescriptors writes ds to w in the layout read by DecodeDescriptors.
func EncodeDescriptors(w io.Writer, ds []Descriptor) error {
	if err := toml.NewEncoder(w).Encode(descriptorFile{Wave: ds}); err != nil {
		return fmt.Errorf("EncodeDescriptors: %w", err)
	}

	return nil
}

// checkUndecoded rejects documents carrying keys the layout does not know.
func checkUndecoded(method string, md toml.MetaData, ds []Descriptor) ([]Descriptor, error) {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}

		return nil, fmt.Errorf("%s: unknown keys %s: %w", method, strings.Join(names, ", "), ErrDescriptorFile)
	}

	return ds, nil
}
