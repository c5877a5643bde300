package feed

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"sports-ticker/internal/config"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestScoreboardBuildsLeagueURLAndDecodesEvents(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return jsonResponse(http.StatusOK, `{
			"events": [
				{
					"id": "401547439",
					"date": "2024-01-15T00:30Z",
					"competitions": [
						{
							"competitors": [
								{"team": {"abbreviation": "KC"}, "score": "24"},
								{"team": {"abbreviation": "BUF"}, "score": "20"}
							]
						}
					],
					"status": {"type": {"name": "STATUS_FINAL", "shortDetail": "Final"}}
				}
			]
		}`), nil
	})

	client := NewClient(ClientConfig{
		BaseURL:    "http://example.com/apis/site/v2",
		HTTPClient: &http.Client{Transport: rt},
	})

	events, err := client.Scoreboard(context.Background(), config.League{Name: "NFL", Sport: "football", Slug: "nfl"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/apis/site/v2/sports/football/nfl/scoreboard" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Status.Type.Name != "STATUS_FINAL" {
		t.Fatalf("expected STATUS_FINAL, got %s", ev.Status.Type.Name)
	}
	if got := ev.Competitions[0].Competitors[0].Team.Abbreviation; got != "KC" {
		t.Fatalf("expected first competitor KC, got %s", got)
	}
}

func TestScoreboardUsesFeedURLOverride(t *testing.T) {
	var capturedURL string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"events": []}`), nil
	})

	client := NewClient(ClientConfig{HTTPClient: &http.Client{Transport: rt}})
	league := config.League{Name: "XFL", FeedURL: "http://override.example.com/custom/scoreboard"}

	if _, err := client.Scoreboard(context.Background(), league); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedURL != "http://override.example.com/custom/scoreboard" {
		t.Fatalf("expected override URL, got %s", capturedURL)
	}
}

func TestScoreboardNonOKStatusIsAnError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream broke"), nil
	})

	client := NewClient(ClientConfig{HTTPClient: &http.Client{Transport: rt}})
	_, err := client.Scoreboard(context.Background(), config.League{Name: "NFL", Sport: "football", Slug: "nfl"})
	if err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestScoreboardMalformedBodyIsAnError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>not json</html>"), nil
	})

	client := NewClient(ClientConfig{HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.Scoreboard(context.Background(), config.League{Name: "MLB", Sport: "baseball", Slug: "mlb"}); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestFixtureServesEmbeddedEvents(t *testing.T) {
	events, err := NewFixture().Scoreboard(context.Background(), config.League{Name: "NBA"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 fixture events, got %d", len(events))
	}
	for _, ev := range events {
		if _, normErr := Normalize(ev, config.League{Name: "NBA"}, -5); normErr != nil {
			t.Fatalf("fixture event %s should normalize, got %v", ev.ID, normErr)
		}
	}
}
