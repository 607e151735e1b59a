package mongostore

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"policerecords/internal/models"
)

func TestBuildGeofileQueryEmpty(t *testing.T) {
	q := buildGeofileQuery(models.GeofileFilter{})
	if len(q) != 0 {
		t.Fatalf("empty filter produced query: %v", q)
	}
}

func TestBuildGeofileQuerySearch(t *testing.T) {
	q := buildGeofileQuery(models.GeofileFilter{Search: "patrol"})

	or, ok := q["$or"].(bson.A)
	if !ok {
		t.Fatalf("$or missing: %v", q)
	}
	if len(or) != 4 {
		t.Fatalf("search spans %d fields, want 4", len(or))
	}

	fields := make(map[string]bool)
	for _, clause := range or {
		m := clause.(bson.M)
		for field, cond := range m {
			fields[field] = true
			c := cond.(bson.M)
			if c["$regex"] != "patrol" || c["$options"] != "i" {
				t.Fatalf("clause for %s: %v", field, c)
			}
		}
	}
	for _, f := range []string{"filename", "description", "address", "locationName"} {
		if !fields[f] {
			t.Fatalf("field %s not searched", f)
		}
	}
}

func TestBuildGeofileQueryTypeAndAccess(t *testing.T) {
	q := buildGeofileQuery(models.GeofileFilter{FileType: "kml", AccessLevel: models.AccessLevelPublic})

	ft, ok := q["fileType"].(bson.M)
	if !ok {
		t.Fatalf("fileType clause missing: %v", q)
	}
	if ft["$regex"] != "^kml$" || ft["$options"] != "i" {
		t.Fatalf("fileType clause: %v", ft)
	}
	if q["accessLevel"] != models.AccessLevelPublic {
		t.Fatalf("accessLevel clause: %v", q["accessLevel"])
	}
	if _, ok := q["$or"]; ok {
		t.Fatalf("no search given, $or should be absent")
	}
}

func TestTagsIntersect(t *testing.T) {
	tests := []struct {
		name   string
		stored []string
		wanted []string
		want   bool
	}{
		{"overlap", []string{"patrol", "routes"}, []string{"routes"}, true},
		{"disjoint", []string{"patrol"}, []string{"crime"}, false},
		{"empty stored", nil, []string{"crime"}, false},
		{"empty wanted", []string{"patrol"}, nil, false},
	}
	for _, tt := range tests {
		if got := tagsIntersect(tt.stored, tt.wanted); got != tt.want {
			t.Fatalf("%s: got %v", tt.name, got)
		}
	}
}

func TestTagsRoundtripMerge(t *testing.T) {
	merged := models.DecodeTags(models.EncodeTags([]string{"a", "b"}))
	if !reflect.DeepEqual(merged, []string{"a", "b"}) {
		t.Fatalf("roundtrip: %v", merged)
	}
}
