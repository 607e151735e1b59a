package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"policerecords/internal/models"
)

func (a *API) createGeofile(w http.ResponseWriter, r *http.Request) {
	var g models.Geofile
	if err := decode(r, &g); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	created, err := a.store.CreateGeofile(r.Context(), &g)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusCreated, created)
}

func (a *API) getGeofile(w http.ResponseWriter, r *http.Request) {
	g, err := a.store.GetGeofile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, g)
}

// geofileFilterFromQuery reads the listing filter from query parameters.
// tags is comma-separated; dateFrom/dateTo accept RFC 3339 or plain dates.
func geofileFilterFromQuery(r *http.Request) (models.GeofileFilter, error) {
	q := r.URL.Query()

	filter := models.GeofileFilter{
		Search:      q.Get("search"),
		FileType:    q.Get("fileType"),
		AccessLevel: q.Get("accessLevel"),
	}
	if tags := q.Get("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Tags = append(filter.Tags, t)
			}
		}
	}

	parse := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var err error
	if filter.DateFrom, err = parse(q.Get("dateFrom")); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parse(q.Get("dateTo")); err != nil {
		return filter, err
	}
	return filter, nil
}

func (a *API) listGeofiles(w http.ResponseWriter, r *http.Request) {
	filter, err := geofileFilterFromQuery(r)
	if err != nil {
		a.badRequest(w, r, "invalid date filter")
		return
	}

	geofiles, err := a.store.ListGeofiles(r.Context(), filter)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, geofiles)
}

func (a *API) searchGeofilesByLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		a.badRequest(w, r, "lat and lng are required")
		return
	}

	radius := 1000.0
	if s := q.Get("radius"); s != "" {
		var err error
		if radius, err = strconv.ParseFloat(s, 64); err != nil || radius <= 0 {
			a.badRequest(w, r, "invalid radius")
			return
		}
	}

	geofiles, err := a.store.SearchGeofilesByLocation(r.Context(), lat, lng, radius)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, geofiles)
}

func (a *API) updateGeofile(w http.ResponseWriter, r *http.Request) {
	var upd models.GeofileUpdate
	if err := decode(r, &upd); err != nil {
		a.badRequest(w, r, "invalid request body")
		return
	}

	g, err := a.store.UpdateGeofile(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, g)
}

func (a *API) linkGeofileToCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CaseID string `json:"caseId"`
	}
	if err := decode(r, &req); err != nil || req.CaseID == "" {
		a.badRequest(w, r, "caseId is required")
		return
	}

	if err := a.store.LinkGeofileToCase(r.Context(), mux.Vars(r)["id"], req.CaseID); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addGeofileTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tags []string `json:"tags"`
	}
	if err := decode(r, &req); err != nil || len(req.Tags) == 0 {
		a.badRequest(w, r, "tags are required")
		return
	}

	if err := a.store.AddGeofileTags(r.Context(), mux.Vars(r)["id"], req.Tags); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// geofileUploadURL hands out a presigned PUT URL plus the storage key the
// client should record in the geofile it creates afterwards.
func (a *API) geofileUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := a.presigner.PresignedPutURL(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, r, http.StatusOK, map[string]string{"key": key, "uploadUrl": url})
}

// downloadGeofile counts the download and returns a presigned GET URL for
// the stored object.
func (a *API) downloadGeofile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	g, err := a.store.GetGeofile(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	url, err := a.presigner.PresignedGetURL(r.Context(), g.Filepath)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.store.IncrementGeofileDownload(r.Context(), id); err != nil {
		a.log.Warn(r.Context(), "download count not incremented", "geofile", id, "error", err)
	}

	a.writeJSON(w, r, http.StatusOK, map[string]string{"downloadUrl": url})
}

func (a *API) deleteGeofile(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteGeofile(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
