package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dbc/backend/internal/service"
)

type TXTVerifyHandler struct {
	service service.TXTVerificationService
}

type verifyTXTRequest struct {
	Domain string `json:"domain" validate:"required"`
}

type txtChallengeResponse struct {
	Domain       string  `json:"domain"`
	Verified     bool    `json:"verified"`
	VerifiedAt   *string `json:"verifiedAt,omitempty"`
	RecordType   string  `json:"recordType,omitempty"`
	RecordName   string  `json:"recordName,omitempty"`
	RecordHost   string  `json:"recordHost,omitempty"`
	RecordValue  string  `json:"recordValue,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
}

type txtVerifyResponse struct {
	Domain     string  `json:"domain"`
	Verified   bool    `json:"verified"`
	VerifiedAt *string `json:"verifiedAt,omitempty"`
	Message    string  `json:"message"`
}

func NewTXTVerifyHandler(service service.TXTVerificationService) *TXTVerifyHandler {
	return &TXTVerifyHandler{service: service}
}

func (h *TXTVerifyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/domains/verify-txt", h.Challenge)
	g.POST("/domains/verify-txt", h.Verify)
}

// Challenge godoc
//
//	@Summary		TXT record to publish for ownership verification
//	@Tags			domains
//	@Produce		json
//	@Param			domain	query		string	true	"domain name"
//	@Success		200		{object}	txtChallengeResponse
//	@Failure		400		{object}	validationErrorResponse
//	@Failure		403		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/domains/verify-txt [get]
func (h *TXTVerifyHandler) Challenge(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	ch, err := h.service.Issue(c.Request().Context(), userID, c.QueryParam("domain"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, txtChallengeResponse{
		Domain:       ch.Domain,
		Verified:     ch.Verified,
		VerifiedAt:   formatTimePtr(ch.VerifiedAt),
		RecordType:   ch.RecordType,
		RecordName:   ch.RecordName,
		RecordHost:   ch.RecordHost,
		RecordValue:  ch.RecordValue,
		Instructions: ch.Instructions,
	})
}

// Verify godoc
//
//	@Summary		Check the published TXT record
//	@Tags			domains
//	@Accept			json
//	@Produce		json
//	@Param			body	body		verifyTXTRequest	true	"domain"
//	@Success		200		{object}	txtVerifyResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		429		{object}	rateLimitErrorResponse
//	@Failure		503		{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/domains/verify-txt [post]
func (h *TXTVerifyHandler) Verify(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req verifyTXTRequest
	if err := bindAndValidate(c, &req); err != nil {
		return Error(c, http.StatusBadRequest, "domain is required")
	}
	res, err := h.service.Verify(c.Request().Context(), userID, req.Domain)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, txtVerifyResponse{
		Domain:     res.Domain,
		Verified:   res.Verified,
		VerifiedAt: formatTimePtr(res.VerifiedAt),
		Message:    res.Message,
	})
}
