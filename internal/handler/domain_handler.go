package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dbc/backend/internal/model"
	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/service"
)

type DomainHandler struct {
	service service.DomainService
}

type addDomainRequest struct {
	Domain   string `json:"domain" validate:"required"`
	Template string `json:"template" validate:"required"`
}

type dnsRecordResponse struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type verificationResponse struct {
	Type   string `json:"type"`
	Domain string `json:"domain"`
	Value  string `json:"value"`
	Reason string `json:"reason,omitempty"`
}

type domainStatusResponse struct {
	Domain        string                 `json:"domain"`
	Template      string                 `json:"template"`
	Verified      bool                   `json:"verified"`
	VerifiedAt    *string                `json:"verifiedAt,omitempty"`
	Misconfigured bool                   `json:"misconfigured"`
	Verification  []verificationResponse `json:"verification"`
	DNSRecords    []dnsRecordResponse    `json:"dnsRecords"`
	TXTVerified   bool                   `json:"txtVerified"`
	TXTVerifiedAt *string                `json:"txtVerifiedAt,omitempty"`
}

type domainResponse struct {
	ID          string  `json:"id"`
	Domain      string  `json:"domain"`
	Template    string  `json:"template"`
	Verified    bool    `json:"verified"`
	VerifiedAt  *string `json:"verifiedAt,omitempty"`
	TXTVerified bool    `json:"txtVerified"`
	CreatedAt   string  `json:"createdAt"`
}

type domainListResponse struct {
	Items []domainResponse `json:"items"`
}

type removeDomainResponse struct {
	Removed bool `json:"removed"`
}

type quotaResponse struct {
	Operation string `json:"operation"`
	Remaining int    `json:"remaining"`
	ResetAt   string `json:"resetAt"`
}

type quotaListResponse struct {
	Items []quotaResponse `json:"items"`
}

func NewDomainHandler(service service.DomainService) *DomainHandler {
	return &DomainHandler{service: service}
}

func (h *DomainHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/domains", h.Add)
	g.GET("/domains", h.Get)
	g.DELETE("/domains", h.Remove)
	g.GET("/domains/rate-limits", h.RateLimits)
}

// Add godoc
//
//	@Summary		Connect a custom domain
//	@Tags			domains
//	@Accept			json
//	@Produce		json
//	@Param			body	body		addDomainRequest	true	"domain and template"
//	@Success		201		{object}	domainStatusResponse
//	@Failure		400		{object}	validationErrorResponse
//	@Failure		409		{object}	errorResponse
//	@Failure		429		{object}	rateLimitErrorResponse
//	@Security		BearerAuth
//	@Router			/domains [post]
func (h *DomainHandler) Add(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req addDomainRequest
	if err := bindAndValidate(c, &req); err != nil {
		return Error(c, http.StatusBadRequest, "domain and template are required")
	}
	st, err := h.service.Add(c.Request().Context(), userID, req.Domain, req.Template)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toDomainStatusResponse(st))
}

// Get godoc
//
//	@Summary		Domain status, or the caller's domains when no domain is given
//	@Tags			domains
//	@Produce		json
//	@Param			domain	query		string	false	"domain name"
//	@Success		200		{object}	domainStatusResponse
//	@Failure		403		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/domains [get]
func (h *DomainHandler) Get(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	domain := c.QueryParam("domain")
	if domain == "" {
		return h.list(c, userID)
	}
	st, err := h.service.Status(c.Request().Context(), userID, domain)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toDomainStatusResponse(st))
}

func (h *DomainHandler) list(c echo.Context, userID string) error {
	rows, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	items := make([]domainResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomainResponse(row))
	}
	return c.JSON(http.StatusOK, domainListResponse{Items: items})
}

// Remove godoc
//
//	@Summary		Disconnect a custom domain
//	@Tags			domains
//	@Produce		json
//	@Param			domain		query		string	true	"domain name"
//	@Param			template	query		string	true	"card or website"
//	@Success		200			{object}	removeDomainResponse
//	@Failure		400			{object}	errorResponse
//	@Failure		429			{object}	rateLimitErrorResponse
//	@Security		BearerAuth
//	@Router			/domains [delete]
func (h *DomainHandler) Remove(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	if err := h.service.Remove(c.Request().Context(), userID, c.QueryParam("domain"), c.QueryParam("template")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, removeDomainResponse{Removed: true})
}

// RateLimits godoc
//
//	@Summary		Remaining quota per domain operation
//	@Tags			domains
//	@Produce		json
//	@Success		200	{object}	quotaListResponse
//	@Security		BearerAuth
//	@Router			/domains/rate-limits [get]
func (h *DomainHandler) RateLimits(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	quotas, err := h.service.Quotas(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	items := make([]quotaResponse, 0, len(quotas))
	for _, op := range ratelimit.Operations() {
		res, ok := quotas[op]
		if !ok {
			continue
		}
		items = append(items, quotaResponse{
			Operation: string(op),
			Remaining: res.Remaining,
			ResetAt:   res.ResetAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, quotaListResponse{Items: items})
}

func toDomainStatusResponse(st *service.DomainStatus) domainStatusResponse {
	resp := domainStatusResponse{
		Domain:        st.Domain,
		Template:      st.Template,
		Verified:      st.Verified,
		VerifiedAt:    formatTimePtr(st.VerifiedAt),
		Misconfigured: st.Misconfigured,
		Verification:  make([]verificationResponse, 0, len(st.Verification)),
		DNSRecords:    make([]dnsRecordResponse, 0, len(st.DNSRecords)),
		TXTVerified:   st.TXTVerified,
		TXTVerifiedAt: formatTimePtr(st.TXTVerifiedAt),
	}
	for _, v := range st.Verification {
		resp.Verification = append(resp.Verification, verificationResponse{Type: v.Type, Domain: v.Domain, Value: v.Value, Reason: v.Reason})
	}
	for _, r := range st.DNSRecords {
		resp.DNSRecords = append(resp.DNSRecords, dnsRecordResponse{Type: r.Type, Name: r.Name, Value: r.Value})
	}
	return resp
}

func toDomainResponse(row model.SiteDomain) domainResponse {
	return domainResponse{
		ID:          strconv.FormatInt(row.ID, 10),
		Domain:      row.Domain,
		Template:    row.Template,
		Verified:    row.Verified,
		VerifiedAt:  formatTimePtr(row.VerifiedAt),
		TXTVerified: row.TXTVerified(),
		CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
