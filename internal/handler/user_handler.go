/*
Package handler provides HTTP handler functions for user registration.
*/
package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/errs"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/req"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/resp"
)

// MaxDisplayNameRunes caps the length of a display name accepted at registration.
const MaxDisplayNameRunes = 64

type RegisterInput struct {
	DisplayName string `json:"displayName"`
}

// HandleRegister creates an HTTP HandlerFunc that registers a display name and
// returns a fresh auth key. Registration itself always succeeds; only malformed
// requests (empty or oversized names) are rejected at this boundary. Display
// names are not unique, and registering again never touches earlier entries.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput

		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		displayName := strings.TrimSpace(input.DisplayName)
		if displayName == "" || utf8.RuneCountInString(displayName) > MaxDisplayNameRunes {
			resp.RespondError(w, r, errs.NewError(errs.ErrDisplayNameInvalid))
			return
		}

		authKey := deps.Registry.Register(displayName)

		resp.RespondSuccess(w, r, map[string]any{
			"authKey": authKey,
		})
	}
}
