// Package http provides http transport for the scribe
package http

import (
	stdhttp "net/http"

	"leadimmo/internal/modkit/httpkit"
	svc "leadimmo/internal/services/scribe/service"
)

// Register mounts scribe endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/generate-post", h.generate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /cron/generate-post Cron cronGeneratePost
// @Summary Generate one AI-assisted draft and fan out translations
// @Tags Cron
// @Accept json
// @Produce json
// @Success 200 {object} domain.GenerateResult "ok"
// @Security BearerAuth
// @Router /cron/generate-post [post]
func (h *handlers) generate(r *stdhttp.Request) (any, error) {
	return h.svc.Generate(r.Context())
}
