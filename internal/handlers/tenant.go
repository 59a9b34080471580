package handlers

import (
	"strings"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// TenantHeader carries the tenant when it is not given as a query parameter.
const TenantHeader = "X-Tenant-ID"

// tenantFromRequest reads the tenant from the tenantId query parameter or the X-Tenant-ID header.
func tenantFromRequest(c *gin.Context) (string, error) {
	tenantID := strings.TrimSpace(c.Query("tenantId"))
	if tenantID == "" {
		tenantID = strings.TrimSpace(c.GetHeader(TenantHeader))
	}
	if tenantID == "" {
		return "", apperrors.NewValidationError(apperrors.KindMissingTenant, "tenantId query parameter or "+TenantHeader+" header is required")
	}
	return tenantID, nil
}
