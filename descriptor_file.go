package xfft

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDescriptor reads a YAML descriptor file.
// The file should be in the format produced by SaveDescriptor.
func LoadDescriptor(filename string) (Descriptor, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to open descriptor file: %w", err)
	}

	defer f.Close()

	d, err := ReadDescriptor(f)
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to load descriptor %s: %w", filename, err)
	}

	return d, nil
}

// ReadDescriptor decodes a YAML descriptor. Enumerations are written by
// name, e.g. "architecture: radix_2_burst_io". Fields that are absent keep
// their DefaultDescriptor values, except output_width which is derived
// when absent. Unknown fields are an error. The result is not validated.
func ReadDescriptor(r io.Reader) (Descriptor, error) {
	d := DefaultDescriptor()
	d.OutputWidth = 0

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Descriptor{}, fmt.Errorf("failed to decode descriptor: %w", err)
	}

	return d, nil
}

// SaveDescriptor writes d to a YAML file.
// The file can be loaded later with LoadDescriptor.
func SaveDescriptor(filename string, d Descriptor) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create descriptor file: %w", err)
	}

	if err := WriteDescriptor(file, d); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close descriptor file: %w", err)
	}

	return nil
}

// WriteDescriptor encodes d as YAML.
func WriteDescriptor(w io.Writer, d Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush descriptor: %w", err)
	}

	return nil
}
