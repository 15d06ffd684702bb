package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

func testInstance(name string) solver.Instance {
	return solver.Instance{
		Name:           name,
		MajorSetupCost: 100,
		HoldingRate:    0.2,
		Items: []solver.Item{
			{ID: "X", SetupCost: 50, Demand: 1000, UnitValue: 10},
			{ID: "Y", SetupCost: 20, Demand: 300, UnitValue: 4},
		},
	}
}

func TestNewMemoryStorageIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if _, err := store.GetInstance(); !errors.Is(err, ErrNoInstance) {
		t.Fatalf("expected ErrNoInstance, got %v", err)
	}
}

func TestSetInstanceUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetInstance(testInstance("warehouse")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetInstance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "warehouse" || len(got.Items) != 2 {
		t.Fatalf("unexpected stored instance: %+v", got)
	}

	// ensure mutation safety
	got.Items[0].ID = "mutated"
	again, err := store.GetInstance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Items[0].ID != "X" {
		t.Fatalf("expected defensive copy, got %+v", again.Items)
	}
}

func TestSetInstanceAppliesDefaultName(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetInstance(testInstance("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetInstance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != solver.DefaultInstanceName {
		t.Fatalf("expected default instance name, got %q", got.Name)
	}
}

func TestSetInstanceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inst    solver.Instance
		wantErr error
	}{
		{
			name:    "NoItems",
			inst:    solver.Instance{MajorSetupCost: 10, HoldingRate: 0.2},
			wantErr: solver.ErrNoItems,
		},
		{
			name: "ZeroMajorSetup",
			inst: solver.Instance{
				HoldingRate: 0.2,
				Items:       []solver.Item{{ID: "x", SetupCost: 1, Demand: 10, UnitValue: 1}},
			},
			wantErr: solver.ErrNonPositiveMajorSetup,
		},
		{
			name: "Degenerate",
			inst: solver.Instance{
				MajorSetupCost: 10,
				HoldingRate:    0.2,
				Items:          []solver.Item{{ID: "x", SetupCost: 1, Demand: 0, UnitValue: 1}},
			},
			wantErr: solver.ErrDegenerateInstance,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetInstance(tc.inst); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			inst := testInstance("batch")
			inst.MajorSetupCost = float64(100 + offset)
			if err := store.SetInstance(inst); err != nil {
				t.Errorf("SetInstance failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetInstance(); err != nil && !errors.Is(err, ErrNoInstance) {
				t.Errorf("GetInstance failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if _, err := store.GetInstance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadInstanceFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "instance.json")
	payload := `{
		"instance_name": "Central_DC",
		"A": 100,
		"r": 0.2,
		"items": [
			{"id": "X", "a": 50, "D": 1000, "v": 10}
		]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	inst, err := LoadInstanceFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Name != "Central_DC" || inst.MajorSetupCost != 100 || inst.HoldingRate != 0.2 {
		t.Fatalf("unexpected instance: %+v", inst)
	}
	if len(inst.Items) != 1 || inst.Items[0].Demand != 1000 {
		t.Fatalf("unexpected items: %+v", inst.Items)
	}
}

func TestLoadInstanceFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "instance.yaml")
	payload := "instance_name: Central_DC\nA: 100\nr: 0.2\nitems:\n  - id: X\n    a: 50\n    D: 1000\n    v: 10\n"
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	inst, err := LoadInstanceFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Name != "Central_DC" || len(inst.Items) != 1 {
		t.Fatalf("unexpected instance: %+v", inst)
	}
}

func TestLoadInstanceFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadInstanceFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	badExt := filepath.Join(t.TempDir(), "instance.txt")
	if err := os.WriteFile(badExt, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadInstanceFile(badExt); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"A": 0, "r": 0.2, "items": [{"id": "x", "a": 1, "D": 1, "v": 1}]}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadInstanceFile(invalid); !errors.Is(err, solver.ErrNonPositiveMajorSetup) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
