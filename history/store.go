// SPDX-License-Identifier: MIT

package history

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// Store is an open run history.
type Store struct {
	db   *bolthold.Store
	now  func() time.Time
	last int64 // CreatedAt of the previous Record; keeps CreatedAt strictly increasing
}

// Open opens (creating if needed) the history database at path. A second
// process holding the file makes Open fail after a 5s timeout.
func Open(path string) (*Store, error) {
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "history: open %s", path)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r, assigning ID and CreatedAt.
func (s *Store) Record(r *Run) error {
	r.CreatedAt = max(s.now().UnixNano(), s.last+1)
	s.last = r.CreatedAt
	if err := s.db.Insert(bolthold.NextSequence(), r); err != nil {
		return errors.Wrap(err, "history: insert")
	}
	// write back the assigned id
	if err := s.db.Update(r.ID, r); err != nil {
		return errors.Wrap(err, "history: update id")
	}

	return nil
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Algorithm   string
	InputDigest string
	Limit       int // most recent Limit runs; 0 = all
}

// List returns matching runs, oldest first.
func (s *Store) List(f Filter) ([]Run, error) {
	q := &bolthold.Query{}
	switch {
	case f.Algorithm != "" && f.InputDigest != "":
		q = bolthold.Where("Algorithm").Eq(f.Algorithm).And("InputDigest").Eq(f.InputDigest)
	case f.Algorithm != "":
		q = bolthold.Where("Algorithm").Eq(f.Algorithm)
	case f.InputDigest != "":
		q = bolthold.Where("InputDigest").Eq(f.InputDigest)
	}
	q = q.SortBy("CreatedAt").Reverse()
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var runs []Run
	if err := s.db.Find(&runs, q); err != nil {
		return nil, errors.Wrap(err, "history: find")
	}
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}

	return runs, nil
}

var csvHeader = []string{
	"id", "created", "algorithm", "n1", "n2", "k", "trials_multiplier",
	"seed", "feasible", "cost", "elapsed_ms", "input_digest",
}

// WriteCSV writes runs with a header row.
func WriteCSV(w io.Writer, runs []Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "history: csv")
	}
	for _, r := range runs {
		rec := []string{
			strconv.FormatUint(r.ID, 10),
			time.Unix(0, r.CreatedAt).UTC().Format(time.RFC3339),
			r.Algorithm,
			strconv.Itoa(r.N1),
			strconv.Itoa(r.N2),
			strconv.Itoa(r.K),
			strconv.Itoa(r.TrialsMultiplier),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatBool(r.Feasible),
			strconv.Itoa(r.Cost),
			strconv.FormatFloat(float64(r.Elapsed)/float64(time.Millisecond), 'f', 3, 64),
			r.InputDigest,
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "history: csv")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "history: csv")
}
