package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"planmyday/internal/models/db_models"
	"planmyday/pkg/utils"
)

// MemoryStore backs both repositories with process memory. It serves
// STORE_DRIVER=memory and the unit tests.
type MemoryStore struct {
	mu       sync.RWMutex
	venues   []db_models.Venue
	plans    map[string]db_models.DayPlan
	geoIndex bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]db_models.DayPlan)}
}

func (s *MemoryStore) Venues() VenueRepository     { return (*memoryVenueRepository)(s) }
func (s *MemoryStore) DayPlans() DayPlanRepository { return (*memoryDayPlanRepository)(s) }

// HasGeoIndex reports whether EnsureGeoIndex has run.
func (s *MemoryStore) HasGeoIndex() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geoIndex
}

// Snapshot returns a copy of the venue collection in insertion order.
func (s *MemoryStore) Snapshot() []db_models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVenues(s.venues)
}

// DayPlanIDs lists the stored plan ids in no particular order.
func (s *MemoryStore) DayPlanIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.plans))
	for id := range s.plans {
		ids = append(ids, id)
	}
	return ids
}

type memoryVenueRepository MemoryStore

func (r *memoryVenueRepository) List(_ context.Context, page, pageSize int) ([]db_models.Venue, error) {
	r.mu.RLock()
	sorted := cloneVenues(r.venues)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	start := (page - 1) * pageSize
	if start >= len(sorted) {
		return []db_models.Venue{}, nil
	}
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end], nil
}

func (r *memoryVenueRepository) ListCandidates(_ context.Context, limit int) ([]db_models.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.venues)
	if limit < n {
		n = limit
	}
	return cloneVenues(r.venues[:n]), nil
}

func (r *memoryVenueRepository) ListNear(_ context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type hit struct {
		venue db_models.Venue
		dist  float64
	}
	var hits []hit
	for _, v := range r.venues {
		d := utils.HaversineMeters(lat, lng, v.Location.Lat, v.Location.Lng)
		if d <= radiusMeters {
			hits = append(hits, hit{venue: v, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	out := make([]db_models.Venue, 0, len(hits))
	for i := 0; i < len(hits) && i < limit; i++ {
		out = append(out, hits[i].venue)
	}
	return out, nil
}

func (r *memoryVenueRepository) GetByID(_ context.Context, id string) (*db_models.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.venues {
		if v.ID == id {
			found := cloneVenues([]db_models.Venue{v})[0]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryVenueRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.venues)), nil
}

func (r *memoryVenueRepository) InsertMany(_ context.Context, venues []db_models.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.venues)+len(venues))
	for _, v := range r.venues {
		seen[v.ID] = true
	}

	batch := cloneVenues(venues)
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = uuid.NewString()
		}
		if seen[batch[i].ID] {
			return fmt.Errorf("failed to insert venues: duplicate id %s", batch[i].ID)
		}
		seen[batch[i].ID] = true
		if batch[i].PopularItems == nil {
			batch[i].PopularItems = []string{}
		}
		batch[i] = batch[i].WithGeoPoint()
	}

	r.venues = append(r.venues, batch...)
	return nil
}

func (r *memoryVenueRepository) DeleteAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.venues))
	r.venues = nil
	return n, nil
}

func (r *memoryVenueRepository) GeoIndexField() string { return GeoField }

func (r *memoryVenueRepository) EnsureGeoIndex(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.geoIndex = true
	return nil
}

type memoryDayPlanRepository MemoryStore

func (r *memoryDayPlanRepository) Create(_ context.Context, plan *db_models.DayPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plans[plan.ID]; exists {
		return fmt.Errorf("day plan %s already exists", plan.ID)
	}
	stored := *plan
	stored.Itinerary = append([]db_models.ItineraryItem(nil), plan.Itinerary...)
	r.plans[plan.ID] = stored
	return nil
}

func (r *memoryDayPlanRepository) GetByID(_ context.Context, id string) (*db_models.DayPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func cloneVenues(in []db_models.Venue) []db_models.Venue {
	out := make([]db_models.Venue, len(in))
	for i, v := range in {
		if v.PopularItems != nil {
			v.PopularItems = append([]string{}, v.PopularItems...)
		}
		out[i] = v
	}
	return out
}
