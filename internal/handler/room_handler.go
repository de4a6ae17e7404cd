/*
Package handler provides HTTP handler functions for room creation and room access checks.
*/
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/auth"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/errs"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/req"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/resp"
)

// RegisterPagePath is where clients without a valid auth key are sent before
// they can create a room.
const RegisterPagePath = "/username"

// chatIDFromRequest parses the {id} route parameter into a room id.
func chatIDFromRequest(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// HandleCreateRoom creates an HTTP HandlerFunc to process room creation requests.
// A caller without a registered auth key is told to register first; the response
// carries the registration page path so the client can redirect. On success the
// creator becomes the room's first authorized member and receives the room id
// together with the shared passphrase for building invite links.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := auth.TokenFromContext(r)

		if !deps.Registry.IsValid(token) {
			customErr := errs.NewError(errs.ErrCredentialRequired)
			resp.RespondJSON(w, r, customErr.Status, resp.JSONResponse{
				Code:    customErr.Code,
				Message: customErr.Message,
				Data: map[string]any{
					"redirect": RegisterPagePath,
				},
			})
			return
		}

		room, err := deps.Store.CreateRoom(token)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"chatId": room.ID,
			"secret": room.Passphrase(),
		})
	}
}

type AuthenticateInput struct {
	Secret string `json:"secret"`
}

// HandleAuthenticate processes an access check for a room. The three outcomes
// (success, pending, fail) are all ordinary HTTP 200 responses; only a malformed
// request body or route parameter is an error. A non-existent numeric id is not
// a caller error here: it yields the fail outcome so callers probing room ids
// learn nothing.
func HandleAuthenticate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := chatIDFromRequest(r)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		var input AuthenticateInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token := auth.TokenFromContext(r)

		outcome := deps.Store.Authenticate(id, token, input.Secret)

		resp.RespondSuccess(w, r, map[string]any{
			"authentication": string(outcome),
		})
	}
}
