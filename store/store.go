// SPDX-License-Identifier: MIT
// Package: awgwave/store
//
// store.go - Store: one file per named object in a directory.
//
// Contract:
//   - Save writes <dir>/<name><ext>, replacing an existing file atomically.
//   - An object without a name is named by the Namer; without one Save
//     fails with ErrEmptyName. The object itself is not renamed.
//   - Typed loaders fail with ErrKindMismatch on a file of another kind.

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/awgwave/circuit"
	"github.com/katalvlaran/awgwave/wave"
	"github.com/rs/zerolog"
)

// Store saves and loads waveform objects under a directory.
type Store struct {
	dir   string
	namer Namer
	log   zerolog.Logger
}

// New returns a Store rooted at dir. The directory is created on first
// Save.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "store").Str("dir", dir).Logger()

	return s
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file path an object of kind named name is saved to.
func (s *Store) Path(kind Kind, name string) string {
	return filepath.Join(s.dir, name+kind.Ext())
}

// Save writes obj and returns the file path.
func (s *Store) Save(obj interface{}) (string, error) {
	kind, name, err := KindOf(obj)
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	override := ""
	if name == "" {
		if s.namer == nil {
			return "", fmt.Errorf("Save: %s: %w", kind, ErrEmptyName)
		}
		if name, err = s.namer(kind); err != nil {
			return "", fmt.Errorf("Save: namer: %w", err)
		}
		if name == "" {
			return "", fmt.Errorf("Save: %s: %w", kind, ErrEmptyName)
		}
		override = name
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("Save: %q: %w", name, ErrBadName)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	path := s.Path(kind, name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, obj, override); err != nil {
		tmp.Close()
		return "", fmt.Errorf("Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	s.log.Info().Str("kind", string(kind)).Str("path", path).Msg("object saved")

	return path, nil
}

// Load reads the object stored at path, e.g. a path returned by Save or
// Path.
func (s *Store) Load(path string) (interface{}, Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	obj, kind, err := Decode(f)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("load failed")
		return nil, kind, fmt.Errorf("Load: %w", err)
	}
	s.log.Debug().Str("kind", string(kind)).Str("path", path).Msg("object loaded")

	return obj, kind, nil
}

// loadAs loads path and checks its kind.
func (s *Store) loadAs(path string, want Kind) (interface{}, error) {
	obj, kind, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, fmt.Errorf("Load: %s holds %s, want %s: %w", path, kind, want, ErrKindMismatch)
	}

	return obj, nil
}

// LoadWave loads a Wave.
func (s *Store) LoadWave(path string) (*wave.Wave, error) {
	obj, err := s.loadAs(path, KindWave)
	if err != nil {
		return nil, err
	}

	return obj.(*wave.Wave), nil
}

// LoadWaveform loads a Waveform.
func (s *Store) LoadWaveform(path string) (*wave.Waveform, error) {
	obj, err := s.loadAs(path, KindWaveform)
	if err != nil {
		return nil, err
	}

	return obj.(*wave.Waveform), nil
}

// LoadQubitChannel loads a QubitChannel.
func (s *Store) LoadQubitChannel(path string) (*wave.QubitChannel, error) {
	obj, err := s.loadAs(path, KindChannel)
	if err != nil {
		return nil, err
	}

	return obj.(*wave.QubitChannel), nil
}

// LoadGate loads a Gate, keeping its ID.
func (s *Store) LoadGate(path string) (*circuit.Gate, error) {
	obj, err := s.loadAs(path, KindGate)
	if err != nil {
		return nil, err
	}

	return obj.(*circuit.Gate), nil
}

// LoadCircuit loads a Circuit. It is compiled if it was when saved.
func (s *Store) LoadCircuit(path string) (*circuit.Circuit, error) {
	obj, err := s.loadAs(path, KindCircuit)
	if err != nil {
		return nil, err
	}

	return obj.(*circuit.Circuit), nil
}
