// Package cart holds the shopping list state: products waiting to be bought
// and products already bought, each with a positive quantity.
package cart

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"shopsmart/internal/domain"
)

// Markers carried by every user-created product.
const (
	CustomIcon        = "cart.badge.plus"
	CustomDescription = "Added manually"
	CustomCategory    = "Custom"
)

type entry struct {
	product domain.Product
	seq     uint64
}

type observer struct {
	id int
	fn func(domain.ListSnapshot)
}

// Store keeps two quantity maps keyed by product ID. A product ID is a key in
// at most one of them and quantities are always positive; a quantity that
// reaches zero removes the key.
//
// Store is not safe for concurrent use. Every operation is total: input that
// makes no sense for the current state is normalized or ignored, never
// rejected.
type Store struct {
	pending   map[string]int
	purchased map[string]int
	products  map[string]entry
	seq       uint64

	observers []observer
	nextObsID int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		pending:   make(map[string]int),
		purchased: make(map[string]int),
		products:  make(map[string]entry),
	}
}

// NewCustomProduct builds a user-created product with a fresh identity.
func NewCustomProduct(name string) domain.Product {
	return domain.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Icon:        CustomIcon,
		Description: CustomDescription,
		Category:    CustomCategory,
		Custom:      true,
	}
}

// Add puts one more unit of p on the pending side. A purchased product is
// moved back to pending first, so its purchased quantity is carried over
// before the increment.
func (s *Store) Add(p domain.Product) {
	if n, ok := s.purchased[p.ID]; ok {
		delete(s.purchased, p.ID)
		s.pending[p.ID] = n
	}
	s.track(p)
	s.pending[p.ID]++
	s.notify()
}

// Decrement takes one unit off p. The pending side is checked first; only one
// side is touched per call.
func (s *Store) Decrement(p domain.Product) {
	switch {
	case s.pending[p.ID] > 0:
		decrement(s.pending, p.ID)
	case s.purchased[p.ID] > 0:
		decrement(s.purchased, p.ID)
	default:
		return
	}
	s.untrack(p.ID)
	s.notify()
}

// Remove drops p from both sides.
func (s *Store) Remove(p domain.Product) {
	if !s.contains(p.ID) {
		return
	}
	delete(s.pending, p.ID)
	delete(s.purchased, p.ID)
	s.untrack(p.ID)
	s.notify()
}

// SetQuantity sets the pending quantity of p to count, moving it off the
// purchased side if needed. A count of zero or less removes p.
func (s *Store) SetQuantity(p domain.Product, count int) {
	if count <= 0 {
		s.Remove(p)
		return
	}
	_, wasPurchased := s.purchased[p.ID]
	if !wasPurchased && s.pending[p.ID] == count {
		return
	}
	delete(s.purchased, p.ID)
	s.track(p)
	s.pending[p.ID] = count
	s.notify()
}

// MarkPurchased moves the pending quantity of p to the purchased side,
// replacing whatever was there. It does nothing when p is not pending.
func (s *Store) MarkPurchased(p domain.Product) {
	if move(s.pending, s.purchased, p.ID) {
		s.notify()
	}
}

// MarkPending is the inverse of MarkPurchased. It does nothing when p is not
// purchased.
func (s *Store) MarkPending(p domain.Product) {
	if move(s.purchased, s.pending, p.ID) {
		s.notify()
	}
}

// Clear empties both sides.
func (s *Store) Clear() {
	if len(s.pending) == 0 && len(s.purchased) == 0 {
		return
	}
	clear(s.pending)
	clear(s.purchased)
	clear(s.products)
	s.notify()
}

// AddCustomProduct creates a user-defined product named name and puts it on
// the pending side with the given count. Callers are expected to reject blank
// names before calling. The product is returned so it can be addressed later;
// with a count below one it is created but not listed.
func (s *Store) AddCustomProduct(name string, count int) domain.Product {
	p := NewCustomProduct(name)
	if count <= 0 {
		return p
	}
	s.track(p)
	s.pending[p.ID] = count
	s.notify()
	return p
}

// TotalCount is the sum of all quantities on both sides.
func (s *Store) TotalCount() int {
	total := 0
	for _, n := range s.pending {
		total += n
	}
	for _, n := range s.purchased {
		total += n
	}
	return total
}

// Count returns the quantity of p on whichever side it is on.
func (s *Store) Count(p domain.Product) int {
	if n, ok := s.pending[p.ID]; ok {
		return n
	}
	return s.purchased[p.ID]
}

// State reports which side p is on.
func (s *Store) State(p domain.Product) domain.ItemState {
	if _, ok := s.pending[p.ID]; ok {
		return domain.StatePending
	}
	if _, ok := s.purchased[p.ID]; ok {
		return domain.StatePurchased
	}
	return domain.StateAbsent
}

// Lookup returns a listed product by ID.
func (s *Store) Lookup(id string) (domain.Product, bool) {
	e, ok := s.products[id]
	return e.product, ok
}

// Pending lists pending items ordered by name, then by when they were listed.
func (s *Store) Pending() []domain.ListItem {
	return s.items(s.pending)
}

// Purchased lists purchased items in the same order as Pending.
func (s *Store) Purchased() []domain.ListItem {
	return s.items(s.purchased)
}

// Snapshot copies the whole list.
func (s *Store) Snapshot() domain.ListSnapshot {
	return domain.ListSnapshot{
		Pending:    s.Pending(),
		Purchased:  s.Purchased(),
		TotalCount: s.TotalCount(),
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// change. Operations that leave the list as it was do not call fn. The
// returned function unregisters fn.
func (s *Store) Subscribe(fn func(domain.ListSnapshot)) (cancel func()) {
	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range slices.Clone(s.observers) {
		o.fn(snap)
	}
}

func (s *Store) items(side map[string]int) []domain.ListItem {
	type row struct {
		item domain.ListItem
		seq  uint64
	}
	rows := make([]row, 0, len(side))
	for id, n := range side {
		e := s.products[id]
		rows = append(rows, row{item: domain.ListItem{Product: e.product, Quantity: n}, seq: e.seq})
	}
	slices.SortFunc(rows, func(a, b row) int {
		return cmp.Or(
			cmp.Compare(a.item.Product.Name, b.item.Product.Name),
			cmp.Compare(a.seq, b.seq),
		)
	})
	out := make([]domain.ListItem, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out
}

func (s *Store) contains(id string) bool {
	_, p := s.pending[id]
	_, b := s.purchased[id]
	return p || b
}

func (s *Store) track(p domain.Product) {
	if _, ok := s.products[p.ID]; ok {
		return
	}
	s.seq++
	s.products[p.ID] = entry{product: p, seq: s.seq}
}

func (s *Store) untrack(id string) {
	if !s.contains(id) {
		delete(s.products, id)
	}
}

func decrement(side map[string]int, id string) {
	side[id]--
	if side[id] <= 0 {
		delete(side, id)
	}
}

func move(from, to map[string]int, id string) bool {
	n, ok := from[id]
	if !ok {
		return false
	}
	delete(from, id)
	to[id] = n
	return true
}
