package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createEvidence(w http.ResponseWriter, r *http.Request) {
	var e models.Evidence
	if err := decode(r, &e); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateEvidence(r.Context(), &e)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getEvidence(w http.ResponseWriter, r *http.Request) {
	e, err := a.store.GetEvidence(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, e)
}

func (a *API) getEvidenceByNumber(w http.ResponseWriter, r *http.Request) {
	e, err := a.store.GetEvidenceByNumber(r.Context(), mux.Vars(r)["evidenceNumber"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, e)
}

func (a *API) listEvidence(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.ListEvidence(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, items)
}

func (a *API) updateEvidence(w http.ResponseWriter, r *http.Request) {
	var upd models.EvidenceUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	e, err := a.store.UpdateEvidence(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, e)
}

func (a *API) deleteEvidence(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteEvidence(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
