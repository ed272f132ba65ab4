package services

import (
	"github.com/casbin/casbin/v2"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// CasbinEnforcerWrapper adapts the concrete casbin enforcer to
// domain.CasbinEnforcer so policy logic can be tested without a database.
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) RemovePolicy(params ...interface{}) (bool, error) {
	return w.enforcer.RemovePolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

func (w *CasbinEnforcerWrapper) SavePolicy() error {
	return w.enforcer.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService. Role subjects carry the
// "role_" prefix; mutations persist through the enforcer's adapter.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service over the concrete enforcer.
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: NewCasbinEnforcerWrapper(enforcer),
	}
}

// NewPolicyServiceWithEnforcer creates a policy service over any
// domain.CasbinEnforcer (used by tests).
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
	}
}

// AddPolicy implements domain.PolicyService. Duplicate rules are reported as
// ErrPolicyExists rather than silently swallowed.
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	added, err := p.enforcer.AddPolicy(role, resource, action)
	if err != nil {
		return err
	}
	if !added {
		return domain.ErrPolicyExists
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	removed, err := p.enforcer.RemovePolicy(role, resource, action)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrPolicyNotFound
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, _ := p.enforcer.GetPolicy()
	return policies
}
