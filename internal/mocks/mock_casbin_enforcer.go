package mocks

import (
	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockCasbinEnforcer implements domain.CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
}

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

// AddPolicy adds a policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	// Default behavior: added
	return true, nil
}

// RemovePolicy removes a policy rule
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	// Default behavior: removed
	return true, nil
}

// Enforce evaluates a request against the policies
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	// Default behavior: denied
	return false, nil
}

// GetPolicy returns all policy rules
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Default behavior: empty
	return nil, nil
}

// SavePolicy persists the policies
func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)
