package memory

import (
	"sync"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.InventoryRepository = (*InventoryStore)(nil)

// InventoryStore holds part quantities in insertion order. A single mutex
// makes Deduct all-or-nothing even with concurrent callers.
type InventoryStore struct {
	mu    sync.Mutex
	qty   map[string]int
	order []string
	log   *zap.Logger
}

func NewInventoryStore(log *zap.Logger) *InventoryStore {
	if log == nil {
		panic("logger is nil")
	}
	return &InventoryStore{
		qty: make(map[string]int),
		log: log,
	}
}

func (s *InventoryStore) AddPart(name string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.qty[name]; !ok {
		s.order = append(s.order, name)
	}
	s.qty[name] += qty
}

// SetPart overwrites the quantity for name. Loading a stock file uses it so a
// repeated line replaces the earlier one.
func (s *InventoryStore) SetPart(name string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.qty[name]; !ok {
		s.order = append(s.order, name)
	}
	s.qty[name] = qty
}

func (s *InventoryStore) IsAvailable(name string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	have, ok := s.qty[name]
	return ok && have >= qty
}

func (s *InventoryStore) Quantity(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	have, ok := s.qty[name]
	return have, ok
}

func (s *InventoryStore) Check(names []string) []exceptions.Shortage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shortages(names)
}

func (s *InventoryStore) Deduct(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shortages := s.shortages(names); len(shortages) > 0 {
		s.log.Warn("inventory: deduct rejected", zap.Strings("parts", names), zap.Int("shortages", len(shortages)))
		return &exceptions.PartUnavailableError{Shortages: shortages}
	}

	for _, name := range names {
		s.qty[name]--
	}
	s.log.Debug("inventory: deducted", zap.Strings("parts", names))
	return nil
}

func (s *InventoryStore) Snapshot() []entities.Part {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Part, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, entities.Part{Name: name, Quantity: s.qty[name]})
	}
	return out
}

// shortages accumulates demand per unique name before comparing it with
// stock, so a part listed twice needs two units. Caller holds mu.
func (s *InventoryStore) shortages(names []string) []exceptions.Shortage {
	demand := make(map[string]int, len(names))
	seen := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := demand[name]; !ok {
			seen = append(seen, name)
		}
		demand[name]++
	}

	var out []exceptions.Shortage
	for _, name := range seen {
		have, ok := s.qty[name]
		switch {
		case !ok:
			out = append(out, exceptions.Shortage{Part: name, Need: demand[name], Missing: true})
		case have < demand[name]:
			out = append(out, exceptions.Shortage{Part: name, Need: demand[name], Have: have})
		}
	}
	return out
}
