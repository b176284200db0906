package swissunihockey

import (
	"bytes"
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/providers"
	"floorball-games-service/internal/timeutil"
)

// UpcomingEvents fetches the team's iCalendar export and returns the next
// limit future events, soonest first. A missing or unparseable calendar
// degrades to an empty list with a diagnostic entry.
func (c *Client) UpcomingEvents(ctx context.Context, teamID, limit int) []domain.CalendarEvent {
	if limit <= 0 {
		limit = c.gamesLimit
	}

	body := c.fetchRaw(ctx, endpointCalendars, url.Values{
		"team_id": []string{strconv.Itoa(teamID)},
	}, acceptCalendar)
	if body == nil {
		return []domain.CalendarEvent{}
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		c.diagnose(endpointCalendars, &providers.MalformedResponseError{Endpoint: endpointCalendars, Err: err})
		return []domain.CalendarEvent{}
	}

	now := c.now()
	events := make([]domain.CalendarEvent, 0, limit)
	for _, v := range cal.Events() {
		start, err := v.GetStartAt()
		if err != nil || !start.After(now) {
			continue
		}
		events = append(events, calendarEvent(v, start))
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartsAt.Before(events[j].StartsAt)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

func calendarEvent(v *ics.VEvent, start time.Time) domain.CalendarEvent {
	summary := propValue(v, ics.PropertySummary)
	event := domain.CalendarEvent{
		Summary:  summary,
		StartsAt: start,
		Date:     timeutil.FormatSwissDate(start),
		Time:     timeutil.FormatClock(start),
		Location: propValue(v, ics.PropertyLocation),
		URL:      propValue(v, ics.PropertyUrl),
	}

	// The summary is "Home - Away"; keep the whole string as home when the
	// separator is missing.
	parts := strings.SplitN(summary, " - ", 2)
	event.HomeName = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		event.AwayName = strings.TrimSpace(parts[1])
	}
	return event
}

func propValue(v *ics.VEvent, prop ics.Property) string {
	if p := v.GetProperty(ics.ComponentProperty(prop)); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}
