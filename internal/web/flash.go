package web

import (
	"net/http"
	"net/url"
)

const flashCookie = "elenorm_notice"

// setFlash carries a one-shot notice across a redirect.
func setFlash(w http.ResponseWriter, notice string) {
	if notice == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(notice),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and expires the pending notice, if any.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	notice, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return notice
}
