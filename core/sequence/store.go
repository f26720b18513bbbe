package sequence

import (
	"errors"
	"fmt"

	cerrors "cloudeng.io/errors"
)

var (
	ErrDuplicateID = errors.New("sequence: duplicate id")
	ErrNotFound    = errors.New("sequence: not found")
)

// Store is an id-keyed working set of sequences that remembers insertion
// order. It is not safe for concurrent mutation.
type Store struct {
	byID  map[string]int
	order []Sequence
}

func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// Add inserts s; ids must be unique within the store.
func (st *Store) Add(s Sequence) error {
	if s.id == "" {
		return ErrEmptyID
	}
	if _, dup := st.byID[s.id]; dup {
		return fmt.Errorf("%s: %w", s.id, ErrDuplicateID)
	}
	st.byID[s.id] = len(st.order)
	st.order = append(st.order, s)
	return nil
}

// AddAll inserts every sequence it can and reports all failures together.
func (st *Store) AddAll(seqs ...Sequence) error {
	var errs cerrors.M
	for _, s := range seqs {
		errs.Append(st.Add(s))
	}
	return errs.Err()
}

// Get looks a sequence up by id.
func (st *Store) Get(id string) (Sequence, error) {
	i, ok := st.byID[id]
	if !ok {
		return Sequence{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return st.order[i], nil
}

// Select returns the named sequences in the order given. Every missing id is
// reported.
func (st *Store) Select(ids ...string) ([]Sequence, error) {
	var errs cerrors.M
	out := make([]Sequence, 0, len(ids))
	for _, id := range ids {
		s, err := st.Get(id)
		if err != nil {
			errs.Append(err)
			continue
		}
		out = append(out, s)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns the sequences in insertion order.
func (st *Store) All() []Sequence { return append([]Sequence(nil), st.order...) }

// IDs returns the ids in insertion order.
func (st *Store) IDs() []string {
	ids := make([]string, len(st.order))
	for i, s := range st.order {
		ids[i] = s.id
	}
	return ids
}

func (st *Store) Len() int { return len(st.order) }
