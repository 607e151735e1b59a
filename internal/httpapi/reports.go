package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createReport(w http.ResponseWriter, r *http.Request) {
	var rep models.Report
	if err := decode(r, &rep); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateReport(r.Context(), &rep)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getReport(w http.ResponseWriter, r *http.Request) {
	rep, err := a.store.GetReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, rep)
}

func (a *API) getReportByNumber(w http.ResponseWriter, r *http.Request) {
	rep, err := a.store.GetReportByNumber(r.Context(), mux.Vars(r)["reportNumber"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, rep)
}

func (a *API) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := a.store.ListReports(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, reports)
}

func (a *API) updateReport(w http.ResponseWriter, r *http.Request) {
	var upd models.ReportUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	rep, err := a.store.UpdateReport(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, rep)
}

func (a *API) deleteReport(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteReport(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
