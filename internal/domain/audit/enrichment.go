// Package audit provides utilities for audit field enrichment in domain entities.
package audit

import (
	"context"

	appctx "gstbill/internal/core/context"
)

// EnrichCreatedBy sets CreatedBy and UpdatedBy from the request operator.
// Use in BeforeCreate hooks.
//
// If no operator is in context, this is a no-op.
func EnrichCreatedBy(ctx context.Context, entity interface{}) error {
	operator := appctx.GetOperator(ctx)
	if operator == "" {
		return nil
	}

	switch e := entity.(type) {
	case interface {
		SetCreatedBy(string)
		SetUpdatedBy(string)
	}:
		e.SetCreatedBy(operator)
		e.SetUpdatedBy(operator)
	}

	return nil
}

// EnrichUpdatedBy sets only UpdatedBy from the request operator.
// Use in BeforeUpdate hooks.
//
// If no operator is in context, this is a no-op.
func EnrichUpdatedBy(ctx context.Context, entity interface{}) error {
	operator := appctx.GetOperator(ctx)
	if operator == "" {
		return nil
	}

	switch e := entity.(type) {
	case interface{ SetUpdatedBy(string) }:
		e.SetUpdatedBy(operator)
	}

	return nil
}

// EnrichCreatedByDirect is a type-safe helper that sets fields directly.
// Use when the entity has public CreatedBy/UpdatedBy fields.
func EnrichCreatedByDirect(ctx context.Context, createdBy, updatedBy *string) {
	operator := appctx.GetOperator(ctx)
	if operator != "" && createdBy != nil && updatedBy != nil {
		*createdBy = operator
		*updatedBy = operator
	}
}

// EnrichUpdatedByDirect is a type-safe helper that sets UpdatedBy directly.
func EnrichUpdatedByDirect(ctx context.Context, updatedBy *string) {
	operator := appctx.GetOperator(ctx)
	if operator != "" && updatedBy != nil {
		*updatedBy = operator
	}
}
