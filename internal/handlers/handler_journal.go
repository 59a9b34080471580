package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// RegisterJournalRoutes registers journal entry routes on the given group.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
		entries.PUT("/:entryID", h.updateJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a draft journal entry
// @Description Validates the structure of a new entry and stores it as DRAFT. Balance is checked when posting.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Structural validation failure or unknown account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if strings.TrimSpace(req.TenantID) == "" {
		req.TenantID = c.GetHeader(TenantHeader)
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, middleware.ActorOrSystem(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Journal entry ID"
// @Param   tenantId query string false "Tenant ID (or X-Tenant-ID header)"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Missing tenant"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), tenantID, c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists a tenant's journal entries, newest entry number first, using token pagination
// @Tags journal-entries
// @Produce  json
// @Param   tenantId query string false "Tenant ID (or X-Tenant-ID header)"
// @Param   status query string false "Filter by status" Enums(DRAFT, POSTED, REVERSED)
// @Param   limit query int false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateJournalEntry godoc
// @Summary Update a journal entry
// @Description Edits a draft's description and/or changes status. DRAFT->POSTED validates and posts; POSTED->REVERSED books a compensating entry dated reversalDate.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Journal entry ID"
// @Param   tenantId query string false "Tenant ID (or X-Tenant-ID header)"
// @Param   update body dto.UpdateJournalEntryRequest true "Changes"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, reference or transition failure"
// @Failure 403 {object} dto.ErrorResponse "Entry is no longer editable"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [put]
func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), tenantID, entryID, req, middleware.ActorOrSystem(c))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Journal entry updated",
		slog.String("journal_entry_id", entryID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
