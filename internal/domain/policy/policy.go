package policy

import "github.com/truythudien/truythu-api/internal/domain/enum"

// Operation is something a caller can ask the service to do.
type Operation int

const (
	// OpReadPrices reads the active tariff table. Public.
	OpReadPrices Operation = iota
	// OpWritePrices replaces the tariff table. Admin only.
	OpWritePrices
	// OpCreateCalculation saves a reconciliation result for the caller.
	OpCreateCalculation
	// OpListCalculations lists saved results (scope decided separately).
	OpListCalculations
	// OpManageUsers creates or lists accounts. Admin only.
	OpManageUsers
)

// Allowed decides whether a caller with the given role may perform op.
// Callers without a verified identity must be rejected with 401 before
// this policy is consulted; the role here is always an authenticated one,
// except for OpReadPrices which is public.
func Allowed(role enum.Role, op Operation) bool {
	switch op {
	case OpReadPrices:
		return true
	case OpWritePrices, OpManageUsers:
		return role == enum.RoleAdmin
	case OpCreateCalculation, OpListCalculations:
		return role.IsValid()
	}
	return false
}

// ListScope says which calculation records a caller may see.
type ListScope int

const (
	// ScopeOwn restricts the listing to records owned by the caller.
	ScopeOwn ListScope = iota
	// ScopeAll covers every user's records.
	ScopeAll
)

// CalculationScope decides record visibility: admins see everything,
// everyone else only their own records.
func CalculationScope(role enum.Role) ListScope {
	if role == enum.RoleAdmin {
		return ScopeAll
	}
	return ScopeOwn
}
