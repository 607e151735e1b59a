package memstore

import (
	"math/rand"
	"time"

	"policerecords/internal/models"
)

func strPtr(s string) *string { return &s }

// seed pre-populates the store with a default administrator account and
// sample records. It runs once from New, before the store is shared, so
// it takes no lock. Counters advance with each insert, keeping later
// creates clear of the fixtures.
func (s *Store) seed() {
	s.seedAdmin()
	s.seedCases()
	s.seedVehicles()
	s.seedGeofiles()
}

func (s *Store) seedAdmin() {
	now := s.now()
	id := s.nextUserID
	s.nextUserID++
	s.users[id] = &models.User{
		ID:          formatID(id),
		Username:    "admin",
		Email:       "admin@police.gov",
		Password:    "admin123", // hashing is handled upstream once auth lands
		FirstName:   "System",
		LastName:    "Administrator",
		Role:        models.RoleAdmin,
		BadgeNumber: "ADMIN001",
		Department:  "IT",
		Position:    "System Administrator",
		Phone:       "+1-555-0000",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Store) seedCases() {
	createdAt := time.Date(2025, 1, 20, 11, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 21, 9, 15, 0, 0, time.UTC)

	samples := []models.Case{
		{
			Title:           "Burglary at Main Street Store",
			Description:     "Break-in occurred at electronics store on Main Street. Several items reported missing including laptops and phones.",
			Type:            "Burglary",
			Priority:        models.PriorityHigh,
			Status:          models.CaseStatusInProgress,
			IncidentDate:    timePtr(time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC)),
			Location:        "Main Street Electronics Store, Downtown",
			AssignedOfficer: "Officer Johnson",
			CreatedByID:     "1",
		},
		{
			Title:           "Traffic Accident Investigation",
			Description:     "Multi-vehicle accident at highway intersection. Minor injuries reported.",
			Type:            "Traffic",
			Priority:        models.PriorityMedium,
			Status:          models.CaseStatusOpen,
			IncidentDate:    timePtr(time.Date(2025, 1, 21, 15, 45, 0, 0, time.UTC)),
			Location:        "Highway 101 & Oak Avenue Intersection",
			AssignedOfficer: "Officer Davis",
			CreatedByID:     "1",
		},
		{
			Title:           "Missing Person Report",
			Description:     "Adult male reported missing by family. Last seen at work on Friday evening.",
			Type:            "Other",
			Priority:        models.PriorityCritical,
			Status:          models.CaseStatusOpen,
			IncidentDate:    timePtr(time.Date(2025, 1, 19, 18, 0, 0, 0, time.UTC)),
			Location:        "Last seen at Downtown Office Building",
			AssignedOfficer: "Detective Smith",
			CreatedByID:     "1",
		},
	}

	for i := range samples {
		c := samples[i]
		id := s.nextCaseID
		s.nextCaseID++
		c.ID = formatID(id)
		c.CaseNumber = caseNumber(createdAt.Year(), id)
		c.CreatedAt = createdAt
		c.UpdatedAt = updatedAt
		s.cases[id] = &c
	}
}

func (s *Store) seedVehicles() {
	now := s.now()

	samples := []models.PoliceVehicle{
		{
			VehicleID:       "PATROL-001",
			LicensePlate:    "POL-001",
			VehicleType:     "patrol",
			Make:            "Ford",
			Model:           "Explorer",
			Year:            2023,
			CurrentLocation: "[-122.4194, 37.7749]",
			AssignedArea: "[[-122.4500, 37.7849], [-122.4000, 37.7849], " +
				"[-122.4000, 37.7649], [-122.4500, 37.7649], [-122.4500, 37.7849]]",
			Status:            models.VehicleStatusOnPatrol,
			AssignedOfficerID: strPtr("1"),
		},
		{
			VehicleID:       "PATROL-002",
			LicensePlate:    "POL-002",
			VehicleType:     "motorcycle",
			Make:            "Harley-Davidson",
			Model:           "Police Special",
			Year:            2022,
			CurrentLocation: "[-122.3894, 37.7594]",
			AssignedArea: "[[-122.4200, 37.7700], [-122.3700, 37.7700], " +
				"[-122.3700, 37.7500], [-122.4200, 37.7500], [-122.4200, 37.7700]]",
			Status: models.VehicleStatusAvailable,
		},
		{
			VehicleID:       "K9-001",
			LicensePlate:    "POL-K9-001",
			VehicleType:     "k9",
			Make:            "Chevrolet",
			Model:           "Tahoe",
			Year:            2023,
			CurrentLocation: "[-122.4094, 37.7849]",
			AssignedArea: "[[-122.4300, 37.7900], [-122.3900, 37.7900], " +
				"[-122.3900, 37.7700], [-122.4300, 37.7700], [-122.4300, 37.7900]]",
			Status:            models.VehicleStatusResponding,
			AssignedOfficerID: strPtr("1"),
		},
		{
			VehicleID:       "SPECIAL-001",
			LicensePlate:    "POL-SWAT-001",
			VehicleType:     "special",
			Make:            "Ford",
			Model:           "F-550",
			Year:            2021,
			CurrentLocation: "[-122.4394, 37.7949]",
			AssignedArea: "[[-122.4600, 37.8000], [-122.4100, 37.8000], " +
				"[-122.4100, 37.7800], [-122.4600, 37.7800], [-122.4600, 37.8000]]",
			Status: models.VehicleStatusOutOfService,
		},
	}

	for i := range samples {
		v := samples[i]
		id := s.nextVehicleID
		s.nextVehicleID++
		v.ID = formatID(id)
		v.LastUpdate = now
		v.CreatedAt = now
		v.UpdatedAt = now
		s.vehicles[id] = &v
	}
}

func (s *Store) seedGeofiles() {
	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 18, 15, 30, 0, 0, time.UTC)
	accessedAt := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	samples := []models.Geofile{
		{
			Filename:     "patrol_routes_downtown.kml",
			Filepath:     "/geofiles/patrol_routes_downtown.kml",
			FileURL:      strPtr("https://example.com/geofiles/patrol_routes_downtown.kml"),
			FileType:     "kml",
			FileSize:     15400,
			Coordinates:  "[-122.4194, 37.7749]",
			BoundingBox:  "[[-122.45, 37.77], [-122.40, 37.78]]",
			Address:      "100 Market Street, San Francisco, CA",
			LocationName: "Downtown Patrol Zone",
			Description:  "Primary patrol routes for downtown district including high-traffic commercial areas and tourist zones.",
			Metadata:     `{"creator": "Officer Johnson", "version": "2.1", "patrolShift": "day", "priority": "high"}`,
			Tags:         `["patrol", "downtown", "routes", "primary"]`,
			AccessLevel:  models.AccessLevelDepartment,
			PatrolArea: "[[-122.4500, 37.7849], [-122.4000, 37.7849], " +
				"[-122.4000, 37.7649], [-122.4500, 37.7649]]",
			IncidentMarkers: `[{"type": "theft", "coordinates": [-122.4194, 37.7749], "severity": "medium"}, ` +
				`{"type": "vandalism", "coordinates": [-122.4150, 37.7760], "severity": "low"}]`,
			CaseID:     strPtr("1"),
			UploadedBy: "1",
		},
		{
			Filename:     "crime_hotspots_analysis.geojson",
			Filepath:     "/geofiles/crime_hotspots_analysis.geojson",
			FileType:     "geojson",
			FileSize:     28600,
			Coordinates:  "[-122.4094, 37.7849]",
			BoundingBox:  "[[-122.43, 37.78], [-122.39, 37.79]]",
			Address:      "500 Mission Street, San Francisco, CA",
			LocationName: "Mission District Analysis Zone",
			Description:  "Statistical analysis of crime hotspots in the Mission District based on 6-month incident data.",
			Metadata:     `{"creator": "Crime Analytics Team", "incidents": 347, "methodology": "kernel_density_estimation"}`,
			Tags:         `["analysis", "crime", "hotspots", "statistics", "mission"]`,
			IsPublic:     true,
			AccessLevel:  models.AccessLevelPublic,
			UploadedBy:   "1",
		},
		{
			Filename:     "emergency_evacuation_routes.gpx",
			Filepath:     "/geofiles/emergency_evacuation_routes.gpx",
			FileType:     "gpx",
			FileSize:     12300,
			Coordinates:  "[-122.3894, 37.7594]",
			Address:      "1800 3rd Street, San Francisco, CA",
			LocationName: "Emergency Response Corridor",
			Description:  "Optimized evacuation routes for emergency scenarios including natural disasters and public safety threats.",
			Metadata:     `{"creator": "Emergency Planning Unit", "capacity": "50000_persons", "estimated_time": "45_minutes"}`,
			Tags:         `["emergency", "evacuation", "routes", "safety"]`,
			AccessLevel:  models.AccessLevelInternal,
			UploadedBy:   "1",
		},
		{
			Filename:     "surveillance_coverage_map.shp",
			Filepath:     "/geofiles/surveillance_coverage_map.shp",
			FileType:     "shp",
			FileSize:     45200,
			Coordinates:  "[-122.4394, 37.7949]",
			BoundingBox:  "[[-122.46, 37.79], [-122.41, 37.80]]",
			Address:      "Citywide Coverage",
			LocationName: "CCTV Network Coverage",
			Description:  "Comprehensive map of surveillance camera coverage areas and blind spots throughout the district.",
			Metadata:     `{"cameras": 156, "coverage_percentage": 78.5, "blind_spots": 12}`,
			Tags:         `["surveillance", "cctv", "coverage", "security"]`,
			AccessLevel:  models.AccessLevelInternal,
			UploadedBy:   "1",
		},
		{
			Filename:     "incident_locations_jan2025.kmz",
			Filepath:     "/geofiles/incident_locations_jan2025.kmz",
			FileType:     "kmz",
			FileSize:     67800,
			Coordinates:  "[-122.4194, 37.7749]",
			Address:      "Multiple locations citywide",
			LocationName: "January 2025 Incidents",
			Description:  "Comprehensive mapping of all reported incidents during January 2025 including theft, vandalism, and traffic violations.",
			Metadata:     `{"incidents": 89, "resolved": 67, "pending": 22, "month": "january_2025"}`,
			Tags:         `["incidents", "january", "2025", "reports", "mapping"]`,
			AccessLevel:  models.AccessLevelDepartment,
			UploadedBy:   "1",
		},
	}

	for i := range samples {
		g := samples[i]
		id := s.nextGeofileID
		s.nextGeofileID++
		g.ID = formatID(id)
		if g.Metadata == "" {
			g.Metadata = "{}"
		}
		g.DownloadCount = int64(rand.Intn(25))
		g.LastAccessedAt = timePtr(accessedAt)
		g.CreatedAt = createdAt
		g.UpdatedAt = updatedAt
		s.geofiles[id] = &g
	}
}

func timePtr(t time.Time) *time.Time { return &t }
