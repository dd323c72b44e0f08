package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"repairshop/internal/api/handler/dto"
	"repairshop/internal/config"
	"repairshop/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	cfg    config.AuthConfig
	logger *slog.Logger
}

func NewAuthHandler(cfg config.AuthConfig, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: l.With("component", "AuthHandler"),
	}
}

// GenerateBearerToken mints a session token carrying the role claims the
// identity gate reads. Meant for local development and testing; in
// production the identity provider issues the session.
//
// @Summary Generate a session bearer token
// @Description Generates a signed session token with the given email and role claims.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Token subject and role claims"
// @Success 200 {object} map[string]string "Token successfully generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Router /auth/token [post]
func (h *AuthHandler) GenerateBearerToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	h.logger.Info("Generating bearer token")
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if req.Email == "" {
		h.logger.Error("email is required")
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, "email is required"))
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = req.Email
	}

	claims := jwt.MapClaims{
		"sub":     userID,
		"email":   req.Email,
		"orgRole": req.OrgRole,
		"publicMetadata": map[string]interface{}{
			"role": req.Role,
		},
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		respondError(w, apperrors.ErrInternalServer)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": fmt.Sprintf("Bearer %s", tokenString)})
}
