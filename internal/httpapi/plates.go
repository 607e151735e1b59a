package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createLicensePlate(w http.ResponseWriter, r *http.Request) {
	var p models.LicensePlate
	if err := decode(r, &p); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateLicensePlate(r.Context(), &p)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getLicensePlate(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.GetLicensePlate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, p)
}

// lookupLicensePlate is the patrol-side query: find a record by the
// plate number itself rather than the storage id.
func (a *API) lookupLicensePlate(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.GetLicensePlateByNumber(r.Context(), mux.Vars(r)["plateNumber"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, p)
}

func (a *API) listLicensePlates(w http.ResponseWriter, r *http.Request) {
	plates, err := a.store.ListLicensePlates(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, plates)
}

func (a *API) updateLicensePlate(w http.ResponseWriter, r *http.Request) {
	var upd models.LicensePlateUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	p, err := a.store.UpdateLicensePlate(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, p)
}

func (a *API) deleteLicensePlate(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteLicensePlate(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
