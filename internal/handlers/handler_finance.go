package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// financeHandler handles HTTP requests for ledger transactions and their
// review records.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
	auditService   portssvc.AuditSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade, as portssvc.AuditSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs, auditService: as}
}

// registerFinanceRoutes registers transaction and audit routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newFinanceHandler(financeService, auditService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.PUT("/:id/evidence", h.attachEvidence)
		transactions.GET("/:id/audits", h.listTransactionAudits)
	}

	audits := rg.Group("/audits")
	{
		audits.POST("", h.createAudit)
		audits.GET("", h.listAudits)
		audits.GET("/:id", h.getAudit)
		audits.PUT("/:id", h.updateAudit)
		audits.DELETE("/:id", h.deleteAudit)
	}
}

func (h *financeHandler) createTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.financeService.CreateTransaction(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *financeHandler) getTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.financeService.GetTransactionByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *financeHandler) listTransactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	txns, err := h.financeService.ListTransactions(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionListResponse(txns)})
}

func (h *financeHandler) updateTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.financeService.UpdateTransaction(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *financeHandler) deleteTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.financeService.DeleteTransaction(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *financeHandler) attachEvidence(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("evidence")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "evidence file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	txn, err := h.financeService.AttachEvidence(c.Request.Context(), actor, c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *financeHandler) createAudit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	audit, err := h.auditService.CreateAudit(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAuditResponse(audit))
}

func (h *financeHandler) getAudit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	audit, err := h.auditService.GetAuditByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditResponse(audit))
}

func (h *financeHandler) listAudits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListAuditsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	audits, err := h.auditService.ListAudits(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audits": dto.ToAuditListResponse(audits)})
}

func (h *financeHandler) listTransactionAudits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	audits, err := h.auditService.ListAuditsByTransaction(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audits": dto.ToAuditListResponse(audits)})
}

func (h *financeHandler) updateAudit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	audit, err := h.auditService.UpdateAudit(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditResponse(audit))
}

func (h *financeHandler) deleteAudit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.auditService.DeleteAudit(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
