package swissunihockey

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func calendarFixture() string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//swiss unihockey//games//EN",
		"BEGIN:VEVENT",
		"UID:game-1@swissunihockey",
		"DTSTART:20250920T160000Z",
		"SUMMARY:Wiler-Ersigen - Tigers Langnau",
		"LOCATION:Sporthalle Zuchwil",
		"URL:https://www.swissunihockey.ch/games/2",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:game-2@swissunihockey",
		"DTSTART:20250901T173000Z",
		"SUMMARY:Tigers Langnau - Floorball Köniz Bern",
		"LOCATION:Halle Oberfeld",
		"URL:https://www.swissunihockey.ch/games/1",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:game-0@swissunihockey",
		"DTSTART:20250810T140000Z",
		"SUMMARY:Tigers Langnau - Zug United",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func TestUpcomingEventsParsesAndSorts(t *testing.T) {
	u := newUpstream(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("team_id") != "429523" {
			t.Errorf("unexpected team id %q", r.URL.Query().Get("team_id"))
		}
		if got := r.Header.Get("Accept"); got != acceptCalendar {
			t.Errorf("unexpected Accept header %q", got)
		}
		w.Write([]byte(calendarFixture()))
	})
	defer u.Close()

	c := testClient(u)
	c.now = func() time.Time {
		return time.Date(2025, time.August, 24, 12, 0, 0, 0, time.UTC)
	}

	events := c.UpcomingEvents(context.Background(), 429523, 10)

	// The past event is filtered out, the rest sorted soonest first.
	if len(events) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(events))
	}
	first := events[0]
	if first.HomeName != "Tigers Langnau" || first.AwayName != "Floorball Köniz Bern" {
		t.Fatalf("unexpected summary split %q / %q", first.HomeName, first.AwayName)
	}
	if first.Date != "01.09.2025" || first.Time != "17:30" {
		t.Fatalf("unexpected date/time %q %q", first.Date, first.Time)
	}
	if first.Location != "Halle Oberfeld" {
		t.Fatalf("unexpected location %q", first.Location)
	}
	if events[1].HomeName != "Wiler-Ersigen" {
		t.Fatalf("unexpected order, second event is %q", events[1].Summary)
	}
}

func TestUpcomingEventsHonorsLimit(t *testing.T) {
	u := newUpstream(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(calendarFixture()))
	})
	defer u.Close()

	c := testClient(u)
	c.now = func() time.Time {
		return time.Date(2025, time.August, 24, 12, 0, 0, 0, time.UTC)
	}

	events := c.UpcomingEvents(context.Background(), 429523, 1)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].AwayName != "Floorball Köniz Bern" {
		t.Fatalf("limit must keep the soonest event, got %+v", events[0])
	}
}

func TestUpcomingEventsSummaryWithoutSeparator(t *testing.T) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:misc@swissunihockey",
		"DTSTART:20250905T180000Z",
		"SUMMARY:Cupfinal Bern",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	u := newUpstream(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Join(lines, "\r\n") + "\r\n"))
	})
	defer u.Close()

	c := testClient(u)
	c.now = func() time.Time {
		return time.Date(2025, time.August, 24, 12, 0, 0, 0, time.UTC)
	}

	events := c.UpcomingEvents(context.Background(), 429523, 5)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].HomeName != "Cupfinal Bern" || events[0].AwayName != "" {
		t.Fatalf("unexpected split %q / %q", events[0].HomeName, events[0].AwayName)
	}
}

func TestUpcomingEventsDegradesOnFailure(t *testing.T) {
	u := newUpstream(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer u.Close()

	c := testClient(u)
	events := c.UpcomingEvents(context.Background(), 429523, 5)

	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", events)
	}
	if c.errors.Len() != 1 {
		t.Fatalf("expected 1 diagnostic entry, got %d", c.errors.Len())
	}
}

func TestUpcomingEventsMalformedCalendar(t *testing.T) {
	u := newUpstream(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a calendar"))
	})
	defer u.Close()

	c := testClient(u)
	events := c.UpcomingEvents(context.Background(), 429523, 5)

	if len(events) != 0 {
		t.Fatalf("expected no events, got %v", events)
	}
	if c.errors.Len() != 1 {
		t.Fatalf("expected 1 diagnostic entry, got %d", c.errors.Len())
	}
}
