// Package problem acquires knapsack instances for the CLI: from a YAML file
// or interactively on the console. Both paths reject malformed items at load
// time, before any ratio is computed.
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/compare"
	"github.com/katalvlaran/knapsack/item"
)

// Sentinel errors returned by the loaders.
var (
	// ErrEmptyInput indicates a document with no content.
	ErrEmptyInput = errors.New("problem: empty input")

	// ErrMissingCapacity indicates a document without a capacity key.
	ErrMissingCapacity = errors.New("problem: capacity is required")

	// ErrAborted indicates the interactive prompt ended before completion.
	ErrAborted = errors.New("problem: input aborted")
)

// document is the on-disk shape:
//
//	capacity: 50
//	items:
//	  - {weight: 10, value: 60}
//	  - {weight: 20, value: 100}
type document struct {
	Capacity *int       `yaml:"capacity"`
	Items    []docEntry `yaml:"items"`
}

type docEntry struct {
	Weight int `yaml:"weight"`
	Value  int `yaml:"value"`
}

// LoadFile reads a YAML problem from path; "-" reads stdin.
func LoadFile(path string, stdin io.Reader) (compare.Problem, error) {
	if path == "-" {
		return Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return compare.Problem{}, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses one YAML problem document. Unknown keys are rejected.
// Items get IDs 1..n in document order.
func Decode(r io.Reader) (compare.Problem, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return compare.Problem{}, ErrEmptyInput
		}

		return compare.Problem{}, fmt.Errorf("problem: decode: %w", err)
	}
	if doc.Capacity == nil {
		return compare.Problem{}, ErrMissingCapacity
	}

	items := make([]item.Item, 0, len(doc.Items))
	for i, e := range doc.Items {
		it, err := item.New(i+1, e.Weight, e.Value)
		if err != nil {
			return compare.Problem{}, fmt.Errorf("%w %d: %w", item.ErrInvalidItem, i+1, err)
		}
		items = append(items, it)
	}

	return compare.Problem{Capacity: *doc.Capacity, Items: items}, nil
}
