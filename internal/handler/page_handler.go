/*
Package handler provides the HTTP handlers serving the static pages of the application.

The pages (landing, registration, chat) are plain files from the configured static
directory. The chat page route validates the room id before serving, sending visitors
with a dead link back to the landing page.
*/
package handler

import (
	"net/http"
	"path/filepath"
)

// HandleIndexPage serves the landing page.
func HandleIndexPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(deps.Config.StaticDir, "index.html"))
	}
}

// HandleRegisterPage serves the username registration page.
func HandleRegisterPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(deps.Config.StaticDir, "username.html"))
	}
}

// HandleChatPage serves the chat page for an existing room.
// An unknown or malformed room id redirects to the landing page instead of 404ing,
// matching how dead invite links are handled client-side.
func HandleChatPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := chatIDFromRequest(r)
		if !ok || deps.Store.Get(id) == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		http.ServeFile(w, r, filepath.Join(deps.Config.StaticDir, "chat.html"))
	}
}
