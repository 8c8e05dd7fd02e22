package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/murmurlabs/murmur/internal/apperr"
	"github.com/murmurlabs/murmur/internal/api/middleware"
	"github.com/murmurlabs/murmur/internal/auth"
	"github.com/murmurlabs/murmur/internal/media"
	"github.com/murmurlabs/murmur/internal/models"
	"github.com/murmurlabs/murmur/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Auth bundles the dependencies of the signup/login/profile flows.
type Auth struct {
	Store    models.UserStore
	Uploader media.Uploader
	Tokens   *auth.TokenManager
}

func NewAuth(store models.UserStore, uploader media.Uploader, tokens *auth.TokenManager) *Auth {
	return &Auth{Store: store, Uploader: uploader, Tokens: tokens}
}

// publicUser is the response shape for signup and login. Field names match
// what the frontend already consumes.
type publicUser struct {
	ID         uuid.UUID `json:"_id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic"`
}

func toPublic(u *models.User) publicUser {
	return publicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// POST /api/auth/signup
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) error {
	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return apperr.Validation("Invalid input")
	}

	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return apperr.Validation("All fields are required!")
	}
	if len(input.Password) < 6 {
		return apperr.Validation("Password must be at least 6 characters")
	}

	// Pre-check gives the friendly message; the unique index catches the
	// race it leaves open.
	_, err := h.Store.FindByEmail(r.Context(), input.Email)
	switch {
	case err == nil:
		return apperr.Conflict("Email already used!")
	case errors.Is(err, models.ErrNotFound):
		// new user
	default:
		return apperr.Internal("Database query failed", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("Failed to hash password", err)
	}

	newUser := &models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := h.Store.Create(r.Context(), newUser); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return apperr.Conflict("Email already used!")
		}
		return apperr.Internal("Database insert failed", err)
	}

	// The session starts only after the record is durably saved.
	if err := h.Tokens.SetCookie(w, newUser.ID); err != nil {
		return apperr.Internal("Failed to create token", err)
	}

	utils.JSONResponse(w, http.StatusCreated, toPublic(newUser))
	return nil
}

// POST /api/auth/login
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return apperr.Validation("Invalid input")
	}

	user, err := h.Store.FindByEmail(r.Context(), input.Email)
	switch {
	case err == nil:
		// user found
	case errors.Is(err, models.ErrNotFound):
		// Same message as a bad password so login never confirms whether
		// an email is registered.
		return apperr.Validation("Invalid credentials")
	default:
		return apperr.Internal("Database query failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return apperr.Validation("Invalid credentials")
	}

	if err := h.Tokens.SetCookie(w, user.ID); err != nil {
		return apperr.Internal("Failed to create token", err)
	}

	utils.JSONResponse(w, http.StatusOK, toPublic(user))
	return nil
}

// POST /api/auth/logout
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) error {
	h.Tokens.ClearCookie(w)
	utils.Message(w, http.StatusOK, "Logged out successfully")
	return nil
}

// PUT /api/auth/update-profile
func (h *Auth) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return apperr.Unauthorized("Unauthorized - No Token Provided")
	}

	var input struct {
		ProfilePic string `json:"profilePic"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return apperr.Validation("Invalid input")
	}
	if input.ProfilePic == "" {
		return apperr.Validation("profile pic is required!")
	}

	url, err := h.Uploader.Upload(r.Context(), input.ProfilePic)
	if err != nil {
		return apperr.Upload("Failed to upload profile pic", err)
	}

	updated, err := h.Store.UpdateProfilePic(r.Context(), user.ID, url)
	if err != nil {
		return apperr.Internal("Database update failed", err)
	}

	utils.JSONResponse(w, http.StatusOK, updated)
	return nil
}

// GET /api/auth/check
func (h *Auth) CheckAuth(w http.ResponseWriter, r *http.Request) error {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return apperr.Unauthorized("Unauthorized - No Token Provided")
	}

	utils.JSONResponse(w, http.StatusOK, user)
	return nil
}
