package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

// createUserRequest exists because User never serializes its password;
// on create the password arrives as a regular JSON field.
type createUserRequest struct {
	models.User
	Password string `json:"password"`
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decode(r, &req); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	u := req.User
	u.Password = req.Password

	created, err := a.store.CreateUser(r.Context(), &u)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.store.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, u)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.ListUsers(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, users)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	var upd models.UserUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	u, err := a.store.UpdateUser(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, u)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// forgotPassword issues a reset token for the account behind the given
// email. The token is returned in the response; mail delivery is left to
// the caller.
func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil || req.Email == "" {
		a.badRequest(w, r, "email is required")
		return
	}

	u, err := a.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	token := uuid.New().String()
	if err := a.store.CreatePasswordResetToken(r.Context(), u.ID, token); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, map[string]string{"token": token})
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil || req.Token == "" || req.Password == "" {
		a.badRequest(w, r, "token and password are required")
		return
	}

	rec, err := a.store.GetPasswordResetToken(r.Context(), req.Token)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.store.UpdateUserPassword(r.Context(), rec.UserID, req.Password); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.store.DeletePasswordResetToken(r.Context(), req.Token); err != nil {
		a.log.Warn(r.Context(), "used reset token not deleted", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
