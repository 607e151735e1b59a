package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createOBEntry(w http.ResponseWriter, r *http.Request) {
	var e models.OBEntry
	if err := decode(r, &e); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateOBEntry(r.Context(), &e)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getOBEntry(w http.ResponseWriter, r *http.Request) {
	e, err := a.store.GetOBEntry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, e)
}

func (a *API) listOBEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := a.store.ListOBEntries(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, entries)
}

func (a *API) updateOBEntry(w http.ResponseWriter, r *http.Request) {
	var upd models.OBEntryUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	e, err := a.store.UpdateOBEntry(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, e)
}

func (a *API) deleteOBEntry(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteOBEntry(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
