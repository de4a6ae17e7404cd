/*
Package handler provides HTTP handler functions for fetching and posting room messages.
*/
package handler

import (
	"net/http"
	"strings"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/app/chat"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/auth"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/errs"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/req"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/resp"
)

// MaxMessageBytes caps the size of a single message body.
const MaxMessageBytes = 5000

// HandleFetchMessages returns the room's current history, oldest first.
// The auth key is deliberately not checked for this operation; the page is only
// reachable after passing authentication, and history itself is bounded. A room
// with no messages yet answers with an explicit empty marker rather than nothing,
// which is distinct from the not-found error for an unknown room id.
func HandleFetchMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := chatIDFromRequest(r)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		room := deps.Store.Get(id)
		if room == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrChatNotFound))
			return
		}

		messages := room.Messages()

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
			"empty":    len(messages) == 0,
		})
	}
}

type PostMessageInput struct {
	Body string `json:"body"`
}

// HandlePostMessage appends a message to a room's history. The sender's display
// name is resolved from the auth key at post time and stored by value, so later
// registrations under a different name never rewrite history.
func HandlePostMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := chatIDFromRequest(r)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		token := auth.TokenFromContext(r)

		displayName, registered := deps.Registry.Resolve(token)
		if !registered {
			resp.RespondError(w, r, errs.NewError(errs.ErrCredentialUnknown))
			return
		}

		var input PostMessageInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		body := strings.TrimSpace(input.Body)
		if body == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageBodyEmpty))
			return
		}
		if len(body) > MaxMessageBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageBodyTooLong))
			return
		}

		room := deps.Store.Get(id)
		if room == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrChatNotFound))
			return
		}

		room.Post(chat.Message{
			DisplayName: displayName,
			Body:        body,
		})

		resp.RespondSuccess(w, r, nil)
	}
}
