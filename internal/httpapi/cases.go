package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createCase(w http.ResponseWriter, r *http.Request) {
	var c models.Case
	if err := decode(r, &c); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateCase(r.Context(), &c)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getCase(w http.ResponseWriter, r *http.Request) {
	c, err := a.store.GetCase(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, c)
}

func (a *API) listCases(w http.ResponseWriter, r *http.Request) {
	cases, err := a.store.ListCases(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, cases)
}

func (a *API) updateCase(w http.ResponseWriter, r *http.Request) {
	var upd models.CaseUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	c, err := a.store.UpdateCase(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, c)
}

func (a *API) deleteCase(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteCase(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
