// SPDX-License-Identifier: MIT

package pedigree

import (
	"errors"
	"fmt"
)

// ErrCycle is returned by Sort when an animal is its own ancestor.
var ErrCycle = errors.New("pedigree: animal is its own ancestor")

// visit states of the depth-first ordering.
const (
	white = iota // not reached
	gray         // on the current ancestor path
	black        // emitted
)

// sorter holds the state of one Sort call.
type sorter struct {
	ped   []Record
	index map[string]int
	state []int
	order []Record
}

// Sort returns ped reordered so every parent listed in the pedigree precedes
// its offspring. Animals keep their input order wherever the constraint allows:
// each record is emitted right after its not yet emitted ancestors (sire line
// first). Parents absent from the pedigree stay implicit founders.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID.
//   - ErrCycle when the parent links contain a cycle.
//
// Complexity:
//   - Time O(n), Space O(n).
func Sort(ped []Record) ([]Record, error) {
	// 1. Index identifiers; duplicates make the order ambiguous.
	index := make(map[string]int, len(ped))
	for i, rec := range ped {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, dup := index[rec.ID]; dup {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrDuplicateID)
		}
		index[rec.ID] = i
	}

	// 2. Depth-first over parent links from every record in input order.
	s := &sorter{
		ped:   ped,
		index: index,
		state: make([]int, len(ped)),
		order: make([]Record, 0, len(ped)),
	}
	for i := range ped {
		if err := s.visit(i); err != nil {
			return nil, err
		}
	}

	// 3. Post-order already lists ancestors first; no reversal needed.
	return s.order, nil
}

func (s *sorter) visit(i int) error {
	switch s.state[i] {
	case black:
		return nil
	case gray:
		return fmt.Errorf("%w: %s", ErrCycle, s.ped[i].ID)
	}
	s.state[i] = gray

	for _, p := range [2]string{s.ped[i].Sire, s.ped[i].Dam} {
		if p == "" {
			continue
		}
		if j, ok := s.index[p]; ok {
			if err := s.visit(j); err != nil {
				return err
			}
		}
	}

	s.state[i] = black
	s.order = append(s.order, s.ped[i])
	return nil
}
