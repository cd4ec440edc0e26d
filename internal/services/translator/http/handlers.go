// Package http provides http transport for the translator
package http

import (
	stdhttp "net/http"

	"leadimmo/internal/modkit/httpkit"
	"leadimmo/internal/platform/net/http/bind"
	"leadimmo/internal/services/translator/domain"
	svc "leadimmo/internal/services/translator/service"
)

// Register mounts translator endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/translate", h.translate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /posts/translate Posts postsTranslate
// @Summary Translate one stored post into a target locale
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.TranslatePostInput true "Post and target locale"
// @Success 200 {object} domain.TranslatePostOutput "ok"
// @Security BearerAuth
// @Router /posts/translate [post]
func (h *handlers) translate(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.TranslatePostInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.TranslatePost(r.Context(), in)
}
