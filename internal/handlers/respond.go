package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campushub/campus-accounts/internal/models"
)

var validate = validator.New()

// MessageResponse is the error/status envelope shared by all endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable outcome
	// default: Internal server error
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// requireRole returns the identity from the request context when its role
// is one of the given roles. The auth middleware already verified the
// token; this is the per-handler re-check.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...models.Role) (*models.Identity, bool) {
	identity, ok := models.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: not authenticated")
		return nil, false
	}
	for _, role := range roles {
		if identity.Role == role {
			return identity, true
		}
	}
	writeMessage(w, http.StatusUnauthorized, "Unauthorized: insufficient role")
	return nil, false
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	return requireRole(w, r, models.RoleAdmin, models.RoleSuperAdmin)
}

// validationMessage flattens a validator error into one response string.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email")
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
