package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

//--
// Response payloads & renderers
//--

// MsgResponse is the envelope for every non-entity response the service
// produces, success and failure alike.
type MsgResponse struct {
	HTTPStatusCode int `json:"-"`

	Message string `json:"message"`
}

func (m *MsgResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, m.HTTPStatusCode)
	return nil
}

func Msg(status int, message string) *MsgResponse {
	return &MsgResponse{HTTPStatusCode: status, Message: message}
}

func ErrInvalidRequest(message string) render.Renderer {
	return Msg(http.StatusBadRequest, message)
}

func Render(w http.ResponseWriter, r *http.Request, rnd render.Renderer) {
	if err := render.Render(w, r, rnd); err != nil {
		log.Warn().Err(err).Msg("failed to render")
	}
}

func RenderList(w http.ResponseWriter, r *http.Request, l []render.Renderer) {
	if err := render.RenderList(w, r, l); err != nil {
		log.Warn().Err(err).Msg("failed to render")
	}
}

var ErrProductNotFound = &MsgResponse{HTTPStatusCode: http.StatusNotFound, Message: "Product not found"}
var ErrInternalServer = &MsgResponse{HTTPStatusCode: http.StatusInternalServerError, Message: "Internal server error"}
