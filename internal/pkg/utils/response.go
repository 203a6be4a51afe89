package utils

import (
	"net/http"
	"tutorbook-service/internal/pkg/constvars"
)

// Redirect issues a 303 so that form POSTs are always re-fetched with GET.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, constvars.StatusSeeOther)
}
