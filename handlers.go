package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Index renders the public board: every post, grouped by category in the
// fixed display order. No auth required.
func (b *Board) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := listPosts(b.db)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":           "Schedule Board",
		"Groups":          groupPosts(posts, categoryOrder),
		"IsAuthenticated": b.isAuthenticated(r),
		"Notice":          popFlash(w, r),
	}

	err = b.templates["index.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Board) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		if checkPassword(adminPassword, r.FormValue("password")) {
			token, err := createSession(b.db)
			if err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookies,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int(sessionDuration.Seconds()),
			})

			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		// Deliberately generic: a wrong password gets no hint of how
		// close it was.
		b.renderLogin(w, r, "Invalid password.", http.StatusUnauthorized)
		return
	}

	b.renderLogin(w, r, popFlash(w, r), http.StatusOK)
}

func (b *Board) renderLogin(w http.ResponseWriter, r *http.Request, notice string, status int) {
	data := map[string]any{
		"Title":     "Login",
		"CSRFToken": ensureCSRFToken(w, r),
		"Notice":    notice,
	}

	w.WriteHeader(status)
	err := b.templates["login.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Board) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := deleteSession(b.db, cookie.Value); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Admin renders the management listing and handles new-post submissions
// from the inline create form.
func (b *Board) Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		category := r.FormValue("category")
		title := r.FormValue("title")
		content := r.FormValue("content")

		_, err := createPost(b.db, category, title, content)
		switch {
		case err == nil:
			setFlash(w, "New post added.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		case err == errEmptyField:
			// Incomplete submit is a no-op; fall through and show the
			// listing unchanged.
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	posts, err := listPostsOrdered(b.db)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":           "Admin",
		"Posts":           posts,
		"IsAuthenticated": true,
		"CSRFToken":       ensureCSRFToken(w, r),
		"Notice":          popFlash(w, r),
	}

	err = b.templates["admin.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Board) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := getPostByID(b.db, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		setFlash(w, "Post not found.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		category := r.FormValue("category")
		title := r.FormValue("title")
		content := r.FormValue("content")

		err := updatePost(b.db, id, category, title, content)
		switch {
		case err == nil:
			setFlash(w, "Post updated.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		case err == errEmptyField:
			// Fall through and re-render the form with the stored
			// values, like an incomplete create.
		case err == errPostNotFound:
			setFlash(w, "Post not found.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	data := map[string]any{
		"Title":           "Edit Post",
		"Post":            post,
		"IsAuthenticated": true,
		"CSRFToken":       ensureCSRFToken(w, r),
	}

	err = b.templates["edit.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Delete removes a post. Deleting an id that is already gone still counts
// as success.
func (b *Board) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	if err := deletePost(b.db, id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Post deleted.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
