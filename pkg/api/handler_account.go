package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// createAccountHandler handles POST /api/v1/accounts.
func (s *Server) createAccountHandler(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	acc, err := s.accounts.Create(c.Request.Context(), req.Username)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAccountResponse(acc))
}

// listAccountsHandler handles GET /api/v1/accounts.
func (s *Server) listAccountsHandler(c *gin.Context) {
	accs, err := s.accounts.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]AccountResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, toAccountResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"accounts": out})
}

// getAccountHandler handles GET /api/v1/accounts/{username}.
func (s *Server) getAccountHandler(c *gin.Context) {
	acc, err := s.accounts.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(acc))
}

// updateAccountHandler handles PATCH /api/v1/accounts/{username}.
// Only the enabled flag is mutable.
func (s *Server) updateAccountHandler(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	acc, err := s.accounts.SetEnabled(c.Request.Context(), c.Param("username"), *req.Enabled)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(acc))
}

// deleteAccountHandler handles DELETE /api/v1/accounts/{username}.
// Posts, analyses, and dispatch records cascade.
func (s *Server) deleteAccountHandler(c *gin.Context) {
	if err := s.accounts.Delete(c.Request.Context(), c.Param("username")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
