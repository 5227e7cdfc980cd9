package list

import (
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"shopsmart/internal/cart"
	"shopsmart/internal/domain"
)

var (
	ErrActionsRequired   = errors.New("actions required")
	ErrProductRequired   = errors.New("productId required")
	ErrNameRequired      = errors.New("name required")
	ErrQuantityInvalid   = errors.New("quantity must be positive")
	ErrQuantityRequired  = errors.New("quantity required")
	ErrUnsupportedAction = errors.New("unsupported action")
)

// Action names accepted by Update, compared case-insensitively.
const (
	ActionAdd              = "add"
	ActionDecrement        = "decrement"
	ActionRemove           = "remove"
	ActionSetQuantity      = "setQuantity"
	ActionMarkPurchased    = "markPurchased"
	ActionMarkPending      = "markPending"
	ActionAddCustomProduct = "addCustomProduct"
	ActionClear            = "clear"
)

type productCatalog interface {
	Get(id string) (domain.Product, error)
}

type recorder interface {
	Operation(action string, err error)
}

type nopRecorder struct{}

func (nopRecorder) Operation(string, error) {}

// Service serializes access to one shopping list and addresses products by
// ID, resolving them against the list itself and then the catalog.
type Service struct {
	mu      sync.Mutex
	store   *cart.Store
	catalog productCatalog
	metrics recorder
	logger  *log.Logger
}

func New(store *cart.Store, catalog productCatalog, logger *log.Logger, metrics recorder) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{store: store, catalog: catalog, metrics: metrics, logger: logger}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

type UpdateAction struct {
	Action    string `json:"action"`
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name,omitempty"`
	Quantity  *int   `json:"quantity,omitempty"`
}

func (s *Service) Snapshot() domain.ListSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Subscribe registers fn for list changes. fn runs while the list is locked
// and must not call back into the Service.
func (s *Service) Subscribe(fn func(domain.ListSnapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stop := s.store.Subscribe(fn)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		stop()
	}
}

func (s *Service) Add(productID string) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionAdd, ProductID: productID})
}

func (s *Service) Decrement(productID string) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionDecrement, ProductID: productID})
}

func (s *Service) Remove(productID string) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionRemove, ProductID: productID})
}

func (s *Service) SetQuantity(productID string, quantity int) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionSetQuantity, ProductID: productID, Quantity: &quantity})
}

func (s *Service) MarkPurchased(productID string) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionMarkPurchased, ProductID: productID})
}

func (s *Service) MarkPending(productID string) (domain.ListSnapshot, error) {
	return s.single(UpdateAction{Action: ActionMarkPending, ProductID: productID})
}

func (s *Service) Clear() domain.ListSnapshot {
	snap, _ := s.single(UpdateAction{Action: ActionClear})
	return snap
}

// AddCustom lists a new user-defined product. Blank names are rejected here
// since the store itself accepts any name.
func (s *Service) AddCustom(name string, quantity int) (domain.Product, domain.ListSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act := UpdateAction{Action: ActionAddCustomProduct, Name: name, Quantity: &quantity}
	step, err := s.prepare(act)
	if err != nil {
		s.metrics.Operation(ActionAddCustomProduct, err)
		return domain.Product{}, domain.ListSnapshot{}, err
	}
	p := s.apply(step)
	s.metrics.Operation(ActionAddCustomProduct, nil)
	return p, s.store.Snapshot(), nil
}

// Update applies a batch of actions in order. The whole batch is validated
// first; a rejected batch leaves the list untouched.
func (s *Service) Update(in UpdateInput) (domain.ListSnapshot, error) {
	if len(in.Actions) == 0 {
		return domain.ListSnapshot{}, ErrActionsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	steps := make([]step, 0, len(in.Actions))
	for _, act := range in.Actions {
		st, err := s.prepare(act)
		if err != nil {
			s.metrics.Operation(metricName(act.Action), err)
			return domain.ListSnapshot{}, err
		}
		steps = append(steps, st)
	}
	for _, st := range steps {
		s.apply(st)
		s.metrics.Operation(st.kind, nil)
	}
	return s.store.Snapshot(), nil
}

func (s *Service) single(act UpdateAction) (domain.ListSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.prepare(act)
	if err != nil {
		s.metrics.Operation(metricName(act.Action), err)
		return domain.ListSnapshot{}, err
	}
	s.apply(st)
	s.metrics.Operation(st.kind, nil)
	return s.store.Snapshot(), nil
}

// step is a validated action with its product resolved.
type step struct {
	kind     string
	product  domain.Product
	name     string
	quantity int
}

func (s *Service) prepare(act UpdateAction) (step, error) {
	kind := canonicalAction(act.Action)
	switch kind {
	case ActionAdd, ActionDecrement, ActionRemove, ActionMarkPurchased, ActionMarkPending:
		p, err := s.resolve(act.ProductID)
		if err != nil {
			return step{}, err
		}
		return step{kind: kind, product: p}, nil
	case ActionSetQuantity:
		p, err := s.resolve(act.ProductID)
		if err != nil {
			return step{}, err
		}
		// A missing quantity must not read as zero, which would remove the item.
		if act.Quantity == nil {
			return step{}, ErrQuantityRequired
		}
		return step{kind: kind, product: p, quantity: *act.Quantity}, nil
	case ActionAddCustomProduct:
		name := strings.TrimSpace(act.Name)
		if name == "" {
			return step{}, ErrNameRequired
		}
		quantity := 1
		if act.Quantity != nil {
			quantity = *act.Quantity
		}
		if quantity <= 0 {
			return step{}, ErrQuantityInvalid
		}
		return step{kind: kind, name: name, quantity: quantity}, nil
	case ActionClear:
		return step{kind: kind}, nil
	default:
		return step{}, ErrUnsupportedAction
	}
}

// apply runs one validated step. Custom products have no catalog entry, so
// once one has left the list an action resolved before its removal is a
// no-op.
func (s *Service) apply(st step) domain.Product {
	if st.product.Custom {
		if _, ok := s.store.Lookup(st.product.ID); !ok {
			return st.product
		}
	}
	switch st.kind {
	case ActionAdd:
		s.store.Add(st.product)
	case ActionDecrement:
		s.store.Decrement(st.product)
	case ActionRemove:
		s.store.Remove(st.product)
	case ActionSetQuantity:
		s.store.SetQuantity(st.product, st.quantity)
	case ActionMarkPurchased:
		s.store.MarkPurchased(st.product)
	case ActionMarkPending:
		s.store.MarkPending(st.product)
	case ActionAddCustomProduct:
		p := s.store.AddCustomProduct(st.name, st.quantity)
		s.logger.Printf("list: added custom product id=%s name=%q quantity=%d", p.ID, p.Name, st.quantity)
		return p
	case ActionClear:
		s.store.Clear()
		s.logger.Printf("list: cleared")
	}
	return st.product
}

func (s *Service) resolve(id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, ErrProductRequired
	}
	if p, ok := s.store.Lookup(id); ok {
		return p, nil
	}
	if s.catalog == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.catalog.Get(id)
}

var actionNames = map[string]string{
	strings.ToLower(ActionAdd):              ActionAdd,
	strings.ToLower(ActionDecrement):        ActionDecrement,
	strings.ToLower(ActionRemove):           ActionRemove,
	strings.ToLower(ActionSetQuantity):      ActionSetQuantity,
	strings.ToLower(ActionMarkPurchased):    ActionMarkPurchased,
	strings.ToLower(ActionMarkPending):      ActionMarkPending,
	strings.ToLower(ActionAddCustomProduct): ActionAddCustomProduct,
	strings.ToLower(ActionClear):            ActionClear,
}

func canonicalAction(name string) string {
	return actionNames[strings.ToLower(strings.TrimSpace(name))]
}

// metricName keeps label cardinality bounded for unknown actions.
func metricName(action string) string {
	if kind := canonicalAction(action); kind != "" {
		return kind
	}
	return "unknown"
}
