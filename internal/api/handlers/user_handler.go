package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/staffdesk-be/internal/auth"
	"github.com/isdelr/staffdesk-be/internal/respond"
	"github.com/isdelr/staffdesk-be/internal/services"
	"github.com/isdelr/staffdesk-be/internal/validate"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for signup and login.
type UserHandler struct {
	service services.UserServiceProvider
	codec   *auth.Codec
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, codec *auth.Codec) *UserHandler {
	return &UserHandler{service: service, codec: codec}
}

// Signup handles new account registration. The validation pipeline has
// already checked and normalized the fields by the time this runs.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	values := validate.ValuesFrom(r.Context())

	user, err := h.service.CreateUser(
		values.String("username"),
		values.String("email"),
		values.String("password"),
	)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			respond.Fail(w, http.StatusBadRequest, "User already exists with this email or username")
			return
		}
		log.Error().Err(err).Str("email", values.String("email")).Msg("Failed to register user")
		respond.Fail(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"status":  true,
		"message": "User created successfully.",
		"user_id": user.ID,
	})
}

// Login authenticates a user and issues a signed token. Unknown email and
// wrong password produce the identical rejection.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	values := validate.ValuesFrom(r.Context())
	email := values.String("email")

	user, err := h.service.AuthenticateUser(email, values.String("password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", email).Msg("Failed authentication attempt")
			respond.Fail(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		log.Error().Err(err).Str("email", email).Msg("Authentication lookup failed")
		respond.Fail(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	token, err := h.codec.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respond.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   "Login successful.",
		"jwt_token": token,
	})
}
