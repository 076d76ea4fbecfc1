// Package leaderboard maintains a capacity-bounded, unordered set of the
// highest-burning entities in a domain. Storage order is not significant;
// consumers sort by burned amount when displaying.
package leaderboard

// Capacity is the maximum number of retained entries per domain.
const Capacity = 100

type Entry struct {
	EntityID     uint64
	BurnedAmount uint64
}

// Result reports what a call to Update did to the board.
type Result int

const (
	Rejected Result = iota
	Updated
	Inserted
	Replaced
)

func (r Result) String() string {
	switch r {
	case Rejected:
		return "rejected"
	case Updated:
		return "updated"
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	}
	panic(int(r))
}

// Board holds the working copy of a domain leaderboard.
type Board struct {
	Entries []Entry
}

// scan walks the entries once, locating the target entity and the strict
// minimum slot in the same pass.
func (b *Board) scan(entityID uint64) (int, int) {
	found, min := -1, -1
	minAmount := uint64(1<<64 - 1)
	for i, e := range b.Entries {
		if e.EntityID == entityID {
			found = i
		}
		if e.BurnedAmount < minAmount {
			minAmount = e.BurnedAmount
			min = i
		}
	}
	return found, min
}

// Update applies the admission rule for an entity whose cumulative burned
// amount is now burnedAmount. An entity already on the board is updated in
// place; a new entity is appended while capacity remains; at capacity the
// strict minimum slot is overwritten only when the new amount is strictly
// greater, so an amount equal to the minimum never displaces an incumbent.
// On Replaced the displaced entry is returned alongside the result.
func (b *Board) Update(entityID, burnedAmount uint64) (Result, Entry) {
	found, min := b.scan(entityID)
	if found >= 0 {
		b.Entries[found].BurnedAmount = burnedAmount
		return Updated, Entry{}
	}
	if len(b.Entries) < Capacity {
		b.Entries = append(b.Entries, Entry{EntityID: entityID, BurnedAmount: burnedAmount})
		return Inserted, Entry{}
	}
	if min >= 0 && burnedAmount > b.Entries[min].BurnedAmount {
		ejected := b.Entries[min]
		b.Entries[min] = Entry{EntityID: entityID, BurnedAmount: burnedAmount}
		return Replaced, ejected
	}
	return Rejected, Entry{}
}

// Min returns the smallest burned amount currently retained, or zero for an
// empty board.
func (b *Board) Min() uint64 {
	if len(b.Entries) == 0 {
		return 0
	}
	min := b.Entries[0].BurnedAmount
	for _, e := range b.Entries[1:] {
		if e.BurnedAmount < min {
			min = e.BurnedAmount
		}
	}
	return min
}
