package tentcache

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

const keyPrefix = "tentsolve/solved/"

// Cache wraps a BadgerDB instance storing solved grids.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger-backed cache rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the cached solved Grid for puzzle, if present.
func (c *Cache) Get(puzzle *tentboard.Puzzle) (*tentboard.Grid, bool, error) {
	var cells [][]tentboard.CellState
	var found bool

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(puzzle))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cells)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	grid, err := tentboard.NewGridFromPlayer(puzzle, cells)
	if err != nil {
		return nil, false, err
	}
	return grid, true, nil
}

// Put stores solved as puzzle's cached solution.
func (c *Cache) Put(puzzle *tentboard.Puzzle, solved *tentboard.Grid) error {
	cells := make([][]tentboard.CellState, puzzle.Size)
	for r := range cells {
		cells[r] = solved.Row(r)
	}
	data, err := json.Marshal(cells)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(puzzle), data)
	})
}

// DiskSize reports the cache's on-disk footprint (LSM tree plus value
// log) as a human-readable string, for the CLI's `cache` subcommand.
func (c *Cache) DiskSize() string {
	lsm, vlog := c.db.Size()
	return humanize.Bytes(uint64(lsm + vlog))
}

// cacheKey derives a stable key from puzzle's shape: size, tree
// positions (already in a fixed, caller-supplied order), and row/column
// targets. Two puzzles with identical shape hash identically regardless
// of how their player_grid has been partially filled in — the cache
// holds one canonical solution per shape.
func cacheKey(puzzle *tentboard.Puzzle) []byte {
	var b strings.Builder
	b.WriteString(strconv.Itoa(puzzle.Size))
	for _, t := range puzzle.Trees {
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(t.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(t.Col))
	}
	b.WriteByte('|')
	for _, v := range puzzle.RowTarget {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range puzzle.ColTarget {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	sum := xxhash.Sum64String(b.String())
	return []byte(keyPrefix + strconv.FormatUint(sum, 16))
}
