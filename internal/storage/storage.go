package storage

import (
	"errors"
	"sync"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

var (
	// ErrNoInstance indicates that no replenishment instance has been loaded yet.
	ErrNoInstance = errors.New("no replenishment instance loaded")
)

// Storage provides access to the current replenishment instance.
type Storage interface {
	GetInstance() (solver.Instance, error)
	SetInstance(inst solver.Instance) error
}

// MemoryStorage keeps the current instance in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	instance *solver.Instance
}

// NewMemoryStorage initialises empty storage; an instance must be set before reads succeed.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// GetInstance returns a defensive copy of the currently stored instance.
func (s *MemoryStorage) GetInstance() (solver.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.instance == nil {
		return solver.Instance{}, ErrNoInstance
	}
	return cloneInstance(*s.instance), nil
}

// SetInstance validates and stores the provided instance. The stored name
// falls back to the default when the upload carries none.
func (s *MemoryStorage) SetInstance(inst solver.Instance) error {
	if err := solver.Validate(inst); err != nil {
		return err
	}

	normalized := cloneInstance(inst)
	normalized.Name = inst.DisplayName()

	s.mu.Lock()
	s.instance = &normalized
	s.mu.Unlock()

	return nil
}

func cloneInstance(inst solver.Instance) solver.Instance {
	out := inst
	out.Items = make([]solver.Item, len(inst.Items))
	copy(out.Items, inst.Items)
	return out
}
