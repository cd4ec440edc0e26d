// Package http provides http transport for the leads service
package http

import (
	"encoding/csv"
	"fmt"
	stdhttp "net/http"
	"strings"
	"time"

	"leadimmo/internal/modkit/httpkit"
	phttp "leadimmo/internal/platform/net/http"
	"leadimmo/internal/platform/net/http/bind"
	"leadimmo/internal/services/leads/domain"
	svc "leadimmo/internal/services/leads/service"
)

// Register mounts the public submission endpoint
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/", h.submit)
}

// RegisterAdmin mounts the export endpoint, callers wrap it in auth
func RegisterAdmin(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/export", h.export)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /leads Leads leadsSubmit
// @Summary Submit a new lead from the contact form
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.LeadInput true "Lead submission"
// @Success 201 {object} domain.SubmitOutput "created"
// @Router /leads [post]
func (h *handlers) submit(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.LeadInput](r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// csvHeader is the fixed export column order
var csvHeader = []string{
	"id", "createdAt", "firstName", "phone", "email", "budget",
	"propertyType", "areas", "timing", "callPreference", "timezone",
	"consentVersion",
}

// swagger:route GET /leads/export Leads leadsExport
// @Summary Download all leads as CSV
// @Tags Leads
// @Produce text/csv
// @Success 200 {string} string "csv"
// @Security BearerAuth
// @Router /leads/export [get]
func (h *handlers) export(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	rows, err := h.svc.Export(r.Context())
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=leads-export-%d.csv", time.Now().Unix()))

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, row := range rows {
		_ = cw.Write([]string{
			row.ID,
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.FirstName,
			row.Phone,
			row.Email,
			row.Budget,
			row.PropertyType,
			strings.Join(row.Areas, "|"),
			row.Timing,
			row.CallPreference,
			row.Timezone,
			row.ConsentVersion,
		})
	}
	cw.Flush()
}
