package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// PasswordChanger defines the interface that password change services must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword" validate:"required"`

	// Replacement password
	// required: true
	NewPassword string `json:"newPassword" validate:"required"`
}

// NewChangePasswordHandler returns an HTTP handler for a password change.
// One instance serves each variant; roles restricts who may call it.
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Param changeRequest body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Invalid old password"
// @Failure 404 {object} handlers.MessageResponse "Account not found"
// @Router /admin/change-password [put]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireRole(w, r, roles...)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		err := svc.ChangePassword(r.Context(), identity.ID, req.OldPassword, req.NewPassword)
		switch {
		case err == nil:
			writeMessage(w, http.StatusOK, "Password changed successfully")
		case errors.Is(err, services.ErrInvalidOldPassword):
			writeMessage(w, http.StatusUnauthorized, "Invalid old password")
		case errors.Is(err, services.ErrAccountNotFound):
			writeMessage(w, http.StatusNotFound, "Account not found")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
