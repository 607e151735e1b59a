package memstore

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func TestCreateGeofileDefaults(t *testing.T) {
	s := New()
	ctx := context.Background()

	g, err := s.CreateGeofile(ctx, &models.Geofile{Filename: "zones.kml"})
	if err != nil {
		t.Fatalf("CreateGeofile err: %v", err)
	}
	if g.ID != "6" {
		t.Fatalf("id = %q, want 6 (five fixtures precede)", g.ID)
	}
	if g.UploadedBy != "1" || g.AccessLevel != models.AccessLevelInternal {
		t.Fatalf("defaults: uploadedBy=%q accessLevel=%q", g.UploadedBy, g.AccessLevel)
	}
	if g.Tags != "[]" || g.Metadata != "{}" {
		t.Fatalf("defaults: tags=%q metadata=%q", g.Tags, g.Metadata)
	}
	if g.DownloadCount != 0 || g.LastAccessedAt == nil {
		t.Fatalf("counters: %d %v", g.DownloadCount, g.LastAccessedAt)
	}
}

func TestCreateGeofileRequiresFilename(t *testing.T) {
	s := New()

	if _, err := s.CreateGeofile(context.Background(), &models.Geofile{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("got %v, want ErrorValidation", err)
	}
}

func TestListGeofilesSearch(t *testing.T) {
	s := New()
	ctx := context.Background()

	got, err := s.ListGeofiles(ctx, models.GeofileFilter{Search: "PATROL"})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	// matches the downtown patrol fixture on filename/description
	if len(got) != 1 || got[0].Filename != "patrol_routes_downtown.kml" {
		t.Fatalf("search result: %d records", len(got))
	}
}

func TestListGeofilesFilterComposition(t *testing.T) {
	s := New()
	ctx := context.Background()

	// fileType matches two fixtures with accessLevel department; the tag
	// narrows it to one
	got, err := s.ListGeofiles(ctx, models.GeofileFilter{
		AccessLevel: models.AccessLevelDepartment,
		Tags:        []string{"routes"},
	})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	if len(got) != 1 || got[0].Filename != "patrol_routes_downtown.kml" {
		t.Fatalf("composed filter: got %d records", len(got))
	}
}

func TestListGeofilesFileTypeCaseInsensitive(t *testing.T) {
	s := New()
	ctx := context.Background()

	got, err := s.ListGeofiles(ctx, models.GeofileFilter{FileType: "KML"})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fileType KML: got %d records", len(got))
	}
}

func TestListGeofilesDateRange(t *testing.T) {
	s := New()
	ctx := context.Background()

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	fresh, err := s.CreateGeofile(ctx, &models.Geofile{Filename: "fresh.kml"})
	if err != nil {
		t.Fatalf("CreateGeofile err: %v", err)
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := s.ListGeofiles(ctx, models.GeofileFilter{DateFrom: &from})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Fatalf("dateFrom: got %d records", len(got))
	}

	// the bounds are inclusive
	exact := fresh.CreatedAt
	got, err = s.ListGeofiles(ctx, models.GeofileFilter{DateFrom: &exact, DateTo: &exact})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("inclusive bounds: got %d records", len(got))
	}
}

func TestListGeofilesOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	got, err := s.ListGeofiles(ctx, models.GeofileFilter{})
	if err != nil {
		t.Fatalf("ListGeofiles err: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("not newest-first at %d", i)
		}
	}
}

func TestSearchGeofilesByLocation(t *testing.T) {
	s := New()
	ctx := context.Background()

	// two fixtures sit exactly at the center point
	got, err := s.SearchGeofilesByLocation(ctx, 37.7749, -122.4194, 1000)
	if err != nil {
		t.Fatalf("SearchGeofilesByLocation err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("radius 1000m: got %d records, want 2", len(got))
	}

	// a citywide radius covers every fixture with valid coordinates
	got, err = s.SearchGeofilesByLocation(ctx, 37.7749, -122.4194, 10000)
	if err != nil {
		t.Fatalf("SearchGeofilesByLocation err: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("radius 10km: got %d records, want 5", len(got))
	}
}

func TestSearchGeofilesByLocationSkipsMalformed(t *testing.T) {
	s := New()
	ctx := context.Background()

	g, err := s.CreateGeofile(ctx, &models.Geofile{Filename: "broken.kml", Coordinates: "not json"})
	if err != nil {
		t.Fatalf("CreateGeofile err: %v", err)
	}

	got, err := s.SearchGeofilesByLocation(ctx, 37.7749, -122.4194, 1e7)
	if err != nil {
		t.Fatalf("SearchGeofilesByLocation err: %v", err)
	}
	for _, m := range got {
		if m.ID == g.ID {
			t.Fatalf("malformed coordinates matched")
		}
	}
}

func TestLinkGeofileToCase(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.LinkGeofileToCase(ctx, "2", "3"); err != nil {
		t.Fatalf("LinkGeofileToCase err: %v", err)
	}
	g, err := s.GetGeofile(ctx, "2")
	if err != nil {
		t.Fatalf("GetGeofile err: %v", err)
	}
	if g.CaseID == nil || *g.CaseID != "3" {
		t.Fatalf("caseId = %v", g.CaseID)
	}

	if err := s.LinkGeofileToCase(ctx, "2", "999"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing case: got %v", err)
	}
	if err := s.LinkGeofileToCase(ctx, "999", "1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing geofile: got %v", err)
	}
}

func TestAddGeofileTagsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	g, err := s.CreateGeofile(ctx, &models.Geofile{Filename: "tagged.kml", Tags: `["alpha"]`})
	if err != nil {
		t.Fatalf("CreateGeofile err: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.AddGeofileTags(ctx, g.ID, []string{"beta", "alpha"}); err != nil {
			t.Fatalf("AddGeofileTags err: %v", err)
		}
	}

	got, err := s.GetGeofile(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGeofile err: %v", err)
	}
	tags := models.DecodeTags(got.Tags)
	if !reflect.DeepEqual(tags, []string{"alpha", "beta"}) {
		t.Fatalf("tags = %v", tags)
	}
}

func TestIncrementGeofileDownload(t *testing.T) {
	s := New()
	ctx := context.Background()

	before, err := s.GetGeofile(ctx, "1")
	if err != nil {
		t.Fatalf("GetGeofile err: %v", err)
	}

	if err := s.IncrementGeofileDownload(ctx, "1"); err != nil {
		t.Fatalf("IncrementGeofileDownload err: %v", err)
	}

	after, err := s.GetGeofile(ctx, "1")
	if err != nil {
		t.Fatalf("GetGeofile err: %v", err)
	}
	if after.DownloadCount != before.DownloadCount+1 {
		t.Fatalf("downloadCount %d -> %d", before.DownloadCount, after.DownloadCount)
	}

	// a missing geofile is a no-op, not an error
	if err := s.IncrementGeofileDownload(ctx, "999"); err != nil {
		t.Fatalf("missing geofile: %v", err)
	}
	if err := s.TouchGeofileAccess(ctx, "999"); err != nil {
		t.Fatalf("missing geofile touch: %v", err)
	}
}
