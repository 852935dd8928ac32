// Package hashing detects replays that end in the same position.
package hashing

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures, 0 for unlimited
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of applied moves
	PlyCount int
	// WeakHash is a fast checksum for confirmation
	WeakHash uint32
	// Label names the game, usually its script
	Label string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of g's current position.
func Signature(g *chess.Game, label string) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(g),
		PlyCount: g.PlyCount(),
		WeakHash: WeakHash(g),
		Label:    label,
	}
}

// CheckAndAdd checks whether g's position was seen before and records it.
// For a duplicate it returns the label of the first game seen with it.
func (d *DuplicateDetector) CheckAndAdd(g *chess.Game, label string) (string, bool) {
	sig := Signature(g, label)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Label, true
		}
	}

	if d.IsFull() {
		return "", false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return "", false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
