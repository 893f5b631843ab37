package handlers

import (
	"net/http"

	"supportapi/internal/pkg/models"
	"supportapi/internal/service/ledger"
	"supportapi/internal/service/loans"
	"supportapi/internal/service/statement"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService      *loans.LoanService
	paymentService   *ledger.ApplyPaymentService
	statementService *statement.StatementService
	toolsService     *statement.LoanToolsService
}

func NewLoanHandler(
	loanService *loans.LoanService,
	paymentService *ledger.ApplyPaymentService,
	statementService *statement.StatementService,
	toolsService *statement.LoanToolsService,
) *LoanHandler {
	return &LoanHandler{
		loanService:      loanService,
		paymentService:   paymentService,
		statementService: statementService,
		toolsService:     toolsService,
	}
}

func (h *LoanHandler) AddLoanDetails(c *gin.Context) {
	var body models.AddLoanDetailsRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.loanService.AddLoanDetails(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *LoanHandler) AddLoanPayment(c *gin.Context) {
	var body models.AddLoanPaymentRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.paymentService.ApplyPayment(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *LoanHandler) GetLoanStatement(c *gin.Context) {
	req := models.LoanStatementRequest{
		CustomerID:        c.Query("customerId"),
		LoanAccountNumber: c.Query("loanAccountNumber"),
	}

	resp, err := h.statementService.BuildStatement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LoanHandler) ClosureQuote(c *gin.Context) {
	loanAccountNumber := c.Param("LoanAccountNumber")

	resp, err := h.toolsService.ClosureQuote(c.Request.Context(), loanAccountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LoanHandler) TenureReduction(c *gin.Context) {
	var body models.TenureReductionRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.toolsService.TenureReduction(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LoanHandler) PartPaymentImpact(c *gin.Context) {
	var body models.PartPaymentImpactRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.toolsService.PartPaymentImpact(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
