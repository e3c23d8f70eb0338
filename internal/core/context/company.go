// Package context provides request-scoped values extraction.
package context

import (
	"context"

	"gstbill/internal/core/id"
)

// CompanyContext carries the active company for the request.
// The desktop client works against one company at a time and sends it
// in the X-Company-ID header.
type CompanyContext struct {
	CompanyID id.ID
	Operator  string // free-form operator name from X-Operator, for audit trail
}

type companyContextKey struct{}

// WithCompany adds CompanyContext to context.
func WithCompany(ctx context.Context, cc *CompanyContext) context.Context {
	return context.WithValue(ctx, companyContextKey{}, cc)
}

// GetCompany returns CompanyContext from context.
func GetCompany(ctx context.Context) *CompanyContext {
	if v, ok := ctx.Value(companyContextKey{}).(*CompanyContext); ok {
		return v
	}
	return nil
}

// GetCompanyID returns the active company ID or id.Nil() when unset.
func GetCompanyID(ctx context.Context) id.ID {
	if cc := GetCompany(ctx); cc != nil {
		return cc.CompanyID
	}
	return id.Nil()
}

// GetOperator returns the operator name from context or empty string.
func GetOperator(ctx context.Context) string {
	if cc := GetCompany(ctx); cc != nil {
		return cc.Operator
	}
	return ""
}
