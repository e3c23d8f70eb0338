package middleware

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	appctx "gstbill/internal/core/context"
	"gstbill/internal/core/id"
)

const (
	HeaderCompanyID = "X-Company-ID"
	HeaderOperator  = "X-Operator"
)

// CompanyContext middleware resolves the active company for the request
// from the X-Company-ID header. The desktop client works against one
// company at a time; every catalog and document route below this
// middleware is scoped to it. The optional X-Operator header names the
// person at the counter for the audit trail.
func CompanyContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderCompanyID)
		if raw == "" {
			_ = c.Error(apperror.NewValidation("missing X-Company-ID header"))
			c.Abort()
			return
		}

		companyID, err := id.Parse(raw)
		if err != nil {
			_ = c.Error(apperror.NewValidation("invalid X-Company-ID header").
				WithDetail("value", raw))
			c.Abort()
			return
		}

		cc := &appctx.CompanyContext{
			CompanyID: companyID,
			Operator:  c.GetHeader(HeaderOperator),
		}

		ctx := appctx.WithCompany(c.Request.Context(), cc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
