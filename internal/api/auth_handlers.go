package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"sklep-api/internal/auth"
	"sklep-api/internal/database"
)

type LoginRequest struct {
	Username string `json:"username" example:"jan_kowalski"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...."`
}

// @Summary      Logs a user in
// @Description  Verifies credentials and returns a signed session token valid for 60 minutes.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest   body      LoginRequest  true  "Login Credentials"
// @Success      200            {object}  LoginResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := s.store.GetAccountByUsername(r.Context(), req.Username)
	if err != nil {
		respondDBError(w, err)
		return
	}
	if account == nil {
		// Same message as a wrong password, an unknown username is not
		// distinguishable from the outside.
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(account, s.config.JWT.Secret)
	if err != nil {
		log.Printf("ERROR: failed to sign token for account %s: %v", account.ID, err)
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token})
}

type SignupRequest struct {
	FullName string `json:"full_name" example:"Jan Kowalski"`
	Username string `json:"username" example:"jan_kowalski"`
	Password string `json:"password" example:"password123"`
}

// @Summary      Registers a new account
// @Description  Creates an account with a lower-cased unique username. The password is stored as an argon2id hash.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signupRequest  body      SignupRequest  true  "Account details"
// @Success      200            {object}  map[string]bool
// @Failure      400            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /signup [post]
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	existing, err := s.store.GetAccountByUsername(r.Context(), req.Username)
	if err != nil {
		respondDBError(w, err)
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Username already taken")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Password hashing error: "+err.Error())
		return
	}

	_, err = s.store.CreateAccount(r.Context(), database.CreateAccountParams{
		Username:     req.Username,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
	})
	if err != nil {
		// The existence check above races with concurrent signups, the unique
		// index is what actually enforces the invariant.
		if errors.Is(err, database.ErrUsernameTaken) {
			respondError(w, http.StatusBadRequest, "Username already taken")
			return
		}
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// @Summary      Get current account
// @Description  Returns the account resolved from the bearer token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Account
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (s *Server) GetCurrentAccountHandler(w http.ResponseWriter, r *http.Request) {
	account := AccountFromContext(r.Context())
	if account == nil {
		respondError(w, http.StatusInternalServerError, "Could not retrieve account from token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    account,
	})
}
