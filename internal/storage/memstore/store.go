// Package memstore is the in-memory storage backend. It is the default
// backend and the fallback when the document store is unreachable.
//
// Records live in maps keyed by a per-entity monotonically increasing
// int64; identifiers cross the contract as their decimal string form and
// are never reused within a process lifetime. Everything is lost on
// process exit. The store is pre-seeded with fixture data (one admin
// user, sample cases, vehicles and geofiles); counters are seeded past
// the fixtures so later creates cannot collide.
package memstore

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

type Store struct {
	mu sync.RWMutex

	// now is the record timestamp source, replaceable in tests.
	now func() time.Time

	users    map[int64]*models.User
	cases    map[int64]*models.Case
	obs      map[int64]*models.OBEntry
	plates   map[int64]*models.LicensePlate
	evidence map[int64]*models.Evidence
	geofiles map[int64]*models.Geofile
	reports  map[int64]*models.Report
	vehicles map[int64]*models.PoliceVehicle
	tokens   map[string]*models.PasswordResetToken

	nextUserID     int64
	nextCaseID     int64
	nextOBID       int64
	nextPlateID    int64
	nextEvidenceID int64
	nextGeofileID  int64
	nextReportID   int64
	nextVehicleID  int64
}

// New returns a seeded in-memory store.
func New() *Store {
	s := &Store{
		now:            time.Now,
		users:          make(map[int64]*models.User),
		cases:          make(map[int64]*models.Case),
		obs:            make(map[int64]*models.OBEntry),
		plates:         make(map[int64]*models.LicensePlate),
		evidence:       make(map[int64]*models.Evidence),
		geofiles:       make(map[int64]*models.Geofile),
		reports:        make(map[int64]*models.Report),
		vehicles:       make(map[int64]*models.PoliceVehicle),
		tokens:         make(map[string]*models.PasswordResetToken),
		nextUserID:     1,
		nextCaseID:     1,
		nextOBID:       1,
		nextPlateID:    1,
		nextEvidenceID: 1,
		nextGeofileID:  1,
		nextReportID:   1,
		nextVehicleID:  1,
	}
	s.seed()
	return s
}

// parseID translates a contract identifier into the native map key.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, common.ErrorInvalidID
	}
	return n, nil
}

func formatID(n int64) string {
	return strconv.FormatInt(n, 10)
}

// touch produces the next updatedAt value. The contract requires
// updatedAt to strictly increase on every mutation, which a coarse wall
// clock cannot guarantee for back-to-back writes.
func (s *Store) touch(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func sortedKeys[T any](m map[int64]*T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
