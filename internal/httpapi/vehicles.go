package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createVehicle(w http.ResponseWriter, r *http.Request) {
	var v models.PoliceVehicle
	if err := decode(r, &v); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreatePoliceVehicle(r.Context(), &v)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := a.store.GetPoliceVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, v)
}

func (a *API) lookupVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := a.store.GetPoliceVehicleByLicensePlate(r.Context(), mux.Vars(r)["licensePlate"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, v)
}

func (a *API) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := a.store.ListPoliceVehicles(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, vehicles)
}

func (a *API) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var upd models.PoliceVehicleUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	v, err := a.store.UpdatePoliceVehicle(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, v)
}

// updateVehicleLocation is the high-frequency endpoint used by in-car
// units reporting their position.
func (a *API) updateVehicleLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
	}
	if err := decode(r, &req); err != nil || req.Location == "" {
		a.badRequest(w, r, "location is required")
		return
	}

	v, err := a.store.UpdateVehicleLocation(r.Context(), mux.Vars(r)["id"], req.Location)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, v)
}

func (a *API) updateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil || req.Status == "" {
		a.badRequest(w, r, "status is required")
		return
	}

	v, err := a.store.UpdateVehicleStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, v)
}

func (a *API) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeletePoliceVehicle(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
