// Package httpapi exposes the records storage over a JSON REST API.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"policerecords/internal/files"
	"policerecords/internal/logging"
	"policerecords/internal/storage"
)

type API struct {
	store     storage.Storage
	presigner *files.Presigner
	log       logging.Logger
}

func New(store storage.Storage, presigner *files.Presigner, log logging.Logger) *API {
	return &API{store: store, presigner: presigner, log: log}
}

func (a *API) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			a.log.Warn(r.Context(), "health write failed", "error", err)
		}
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", a.createUser).Methods("POST")
	api.HandleFunc("/users", a.listUsers).Methods("GET")
	api.HandleFunc("/users/{id}", a.getUser).Methods("GET")
	api.HandleFunc("/users/{id}", a.updateUser).Methods("PUT")
	api.HandleFunc("/users/{id}", a.deleteUser).Methods("DELETE")

	api.HandleFunc("/auth/forgot-password", a.forgotPassword).Methods("POST")
	api.HandleFunc("/auth/reset-password", a.resetPassword).Methods("POST")

	api.HandleFunc("/cases", a.createCase).Methods("POST")
	api.HandleFunc("/cases", a.listCases).Methods("GET")
	api.HandleFunc("/cases/{id}", a.getCase).Methods("GET")
	api.HandleFunc("/cases/{id}", a.updateCase).Methods("PUT")
	api.HandleFunc("/cases/{id}", a.deleteCase).Methods("DELETE")

	api.HandleFunc("/ob-entries", a.createOBEntry).Methods("POST")
	api.HandleFunc("/ob-entries", a.listOBEntries).Methods("GET")
	api.HandleFunc("/ob-entries/{id}", a.getOBEntry).Methods("GET")
	api.HandleFunc("/ob-entries/{id}", a.updateOBEntry).Methods("PUT")
	api.HandleFunc("/ob-entries/{id}", a.deleteOBEntry).Methods("DELETE")

	api.HandleFunc("/license-plates", a.createLicensePlate).Methods("POST")
	api.HandleFunc("/license-plates", a.listLicensePlates).Methods("GET")
	api.HandleFunc("/license-plates/lookup/{plateNumber}", a.lookupLicensePlate).Methods("GET")
	api.HandleFunc("/license-plates/{id}", a.getLicensePlate).Methods("GET")
	api.HandleFunc("/license-plates/{id}", a.updateLicensePlate).Methods("PUT")
	api.HandleFunc("/license-plates/{id}", a.deleteLicensePlate).Methods("DELETE")

	api.HandleFunc("/evidence", a.createEvidence).Methods("POST")
	api.HandleFunc("/evidence", a.listEvidence).Methods("GET")
	api.HandleFunc("/evidence/number/{evidenceNumber}", a.getEvidenceByNumber).Methods("GET")
	api.HandleFunc("/evidence/{id}", a.getEvidence).Methods("GET")
	api.HandleFunc("/evidence/{id}", a.updateEvidence).Methods("PUT")
	api.HandleFunc("/evidence/{id}", a.deleteEvidence).Methods("DELETE")

	api.HandleFunc("/geofiles/upload-url", a.geofileUploadURL).Methods("POST")
	api.HandleFunc("/geofiles/search/location", a.searchGeofilesByLocation).Methods("GET")
	api.HandleFunc("/geofiles", a.createGeofile).Methods("POST")
	api.HandleFunc("/geofiles", a.listGeofiles).Methods("GET")
	api.HandleFunc("/geofiles/{id}/download", a.downloadGeofile).Methods("POST")
	api.HandleFunc("/geofiles/{id}/link-case", a.linkGeofileToCase).Methods("POST")
	api.HandleFunc("/geofiles/{id}/tags", a.addGeofileTags).Methods("POST")
	api.HandleFunc("/geofiles/{id}", a.getGeofile).Methods("GET")
	api.HandleFunc("/geofiles/{id}", a.updateGeofile).Methods("PUT")
	api.HandleFunc("/geofiles/{id}", a.deleteGeofile).Methods("DELETE")

	api.HandleFunc("/vehicles", a.createVehicle).Methods("POST")
	api.HandleFunc("/vehicles", a.listVehicles).Methods("GET")
	api.HandleFunc("/vehicles/lookup/{licensePlate}", a.lookupVehicle).Methods("GET")
	api.HandleFunc("/vehicles/{id}/location", a.updateVehicleLocation).Methods("PUT")
	api.HandleFunc("/vehicles/{id}/status", a.updateVehicleStatus).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", a.getVehicle).Methods("GET")
	api.HandleFunc("/vehicles/{id}", a.updateVehicle).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", a.deleteVehicle).Methods("DELETE")

	api.HandleFunc("/reports", a.createReport).Methods("POST")
	api.HandleFunc("/reports", a.listReports).Methods("GET")
	api.HandleFunc("/reports/number/{reportNumber}", a.getReportByNumber).Methods("GET")
	api.HandleFunc("/reports/{id}", a.getReport).Methods("GET")
	api.HandleFunc("/reports/{id}", a.updateReport).Methods("PUT")
	api.HandleFunc("/reports/{id}", a.deleteReport).Methods("DELETE")

	return r
}
