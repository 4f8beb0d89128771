package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"planmyday/internal/models/db_models"
	"planmyday/internal/models/request_models"
	"planmyday/pkg/utils"
)

const (
	maxContextVenues  = 15
	maxFallbackStops  = 5
	fallbackStartHour = 9
	fallbackGap       = 30 * time.Minute
	fallbackNote      = "A great choice."
	missingTime       = "N/A"
)

// PriceTable maps a price tier to the estimated spend for one visit.
var PriceTable = map[string]int{
	db_models.PriceFree: 0,
	db_models.PriceLow:  25,
	db_models.PriceMid:  50,
	db_models.PriceHigh: 100,
	db_models.PriceLuxe: 150,
}

const plannerSystemPrompt = `You are an expert day planner. You build realistic, well-paced single-day itineraries
using only the venues you are given. Respond with a JSON object of the form
{"itinerary": [{"venue_name": "...", "start_time": "HH:MM", "end_time": "HH:MM", "notes": "..."}]}
and nothing else. Use venue names exactly as listed.`

// ProposedStop is one validated entry of a generated itinerary.
type ProposedStop struct {
	VenueName string
	StartTime string
	EndTime   string
	Notes     string
}

// BuildVenueContext renders at most the first 15 candidates, one per line.
func BuildVenueContext(candidates []db_models.Venue) string {
	n := len(candidates)
	if n > maxContextVenues {
		n = maxContextVenues
	}

	lines := make([]string, 0, n)
	for _, v := range candidates[:n] {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", v.Name, v.Category, v.Description))
	}
	return strings.Join(lines, "\n")
}

func BuildPlannerPrompts(req request_models.PlanRequest, weather db_models.WeatherSnapshot, candidates []db_models.Venue) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed day plan for %s.\n", req.TargetLocation().Address)
	fmt.Fprintf(&b, "Budget: %d\n", req.TotalBudget())
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Interests, ", "))
	}
	fmt.Fprintf(&b, "Duration: %s\n", req.Duration)
	fmt.Fprintf(&b, "Group size: %d\n", req.GroupSize)
	fmt.Fprintf(&b, "Weather: %s, %.1f°C (feels like %.1f°C), humidity %d%%\n",
		weather.Description, weather.Temperature, weather.FeelsLike, weather.Humidity)
	b.WriteString("\nAvailable venues:\n")
	b.WriteString(BuildVenueContext(candidates))

	return plannerSystemPrompt, b.String()
}

// ParseProposedStops validates raw model output. Any structural problem is
// reported as ErrUnexpectedBehaviorOfAI; nothing is partially accepted.
// A blank venue_name is well formed and simply matches no venue.
func ParseProposedStops(raw string) ([]ProposedStop, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	rawItinerary, ok := doc["itinerary"]
	if !ok {
		return nil, fmt.Errorf("%w: missing itinerary field", utils.ErrUnexpectedBehaviorOfAI)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawItinerary, &entries); err != nil || entries == nil {
		return nil, fmt.Errorf("%w: itinerary is not an array", utils.ErrUnexpectedBehaviorOfAI)
	}

	stops := make([]ProposedStop, 0, len(entries))
	for i, entry := range entries {
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: stop %d is not an object", utils.ErrUnexpectedBehaviorOfAI, i)
		}

		rawName, ok := fields["venue_name"]
		name, isString := rawName.(string)
		if !ok || !isString {
			return nil, fmt.Errorf("%w: stop %d has no venue_name", utils.ErrUnexpectedBehaviorOfAI, i)
		}
		start, err := stringField(fields, "start_time", missingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %v", utils.ErrUnexpectedBehaviorOfAI, i, err)
		}
		end, err := stringField(fields, "end_time", missingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %v", utils.ErrUnexpectedBehaviorOfAI, i, err)
		}
		notes, err := stringField(fields, "notes", "")
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %v", utils.ErrUnexpectedBehaviorOfAI, i, err)
		}

		stops = append(stops, ProposedStop{VenueName: name, StartTime: start, EndTime: end, Notes: notes})
	}

	return stops, nil
}

func stringField(fields map[string]any, key, def string) (string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// MatchVenue returns the first candidate whose name, case-insensitively, is
// contained in proposedName.
func MatchVenue(proposedName string, candidates []db_models.Venue) (db_models.Venue, bool) {
	proposed := strings.ToLower(strings.TrimSpace(proposedName))
	if proposed == "" {
		return db_models.Venue{}, false
	}
	for _, v := range candidates {
		name := strings.ToLower(v.Name)
		if name == "" {
			continue
		}
		if strings.Contains(proposed, name) {
			return v, true
		}
	}
	return db_models.Venue{}, false
}

// MatchStops keeps the stops that name a known venue, in proposal order.
func MatchStops(stops []ProposedStop, candidates []db_models.Venue) []db_models.ItineraryItem {
	items := make([]db_models.ItineraryItem, 0, len(stops))
	for _, stop := range stops {
		venue, ok := MatchVenue(stop.VenueName, candidates)
		if !ok {
			continue
		}
		items = append(items, db_models.ItineraryItem{
			Venue:     venue,
			StartTime: stop.StartTime,
			EndTime:   stop.EndTime,
			Notes:     stop.Notes,
		})
	}
	return items
}

// FallbackItinerary packs the five best-rated venues back to back from 09:00.
func FallbackItinerary(candidates []db_models.Venue) []db_models.ItineraryItem {
	ranked := make([]db_models.Venue, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if len(ranked) > maxFallbackStops {
		ranked = ranked[:maxFallbackStops]
	}

	clock := time.Date(0, time.January, 1, fallbackStartHour, 0, 0, 0, time.UTC)
	items := make([]db_models.ItineraryItem, 0, len(ranked))
	for _, v := range ranked {
		start := clock
		end := start.Add(time.Duration(v.EstimatedDuration) * time.Minute)
		items = append(items, db_models.ItineraryItem{
			Venue:     v,
			StartTime: utils.FormatClock(start),
			EndTime:   utils.FormatClock(end),
			Notes:     fallbackNote,
		})
		clock = end.Add(fallbackGap)
	}
	return items
}

// EstimateCost sums the price table over the itinerary. Unknown tiers cost 0.
func EstimateCost(items []db_models.ItineraryItem) int {
	total := 0
	for _, item := range items {
		total += PriceTable[item.Venue.PriceRange]
	}
	return total
}
