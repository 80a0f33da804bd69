package handlers

import (
	"crypto/subtle"

	"github.com/charity-platform/backend/internal/auth"
	"github.com/charity-platform/backend/internal/config"
	"github.com/charity-platform/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg *config.Config
	log *zap.Logger
}

func NewAuthHandler(cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, log: log}
}

// Login exchanges the configured admin credentials for a bearer token.
// The token gates only the privileged operations; everything else on the
// API is open.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if h.cfg.AdminPassword == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "admin login disabled"})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		h.log.Warn("failed admin login", zap.String("username", req.Username), zap.String("ip", c.IP()))
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, req.Username, true, h.cfg.JWTExpiration)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.AuthResponse{Token: token})
}
