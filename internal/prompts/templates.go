package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/awolk/sms-directions/internal/models"
)

const routePrompt = `A user sent: '%s'
Extract just the origin and destination. Fix any misspellings or informal place names.
Respond only with a valid JSON object in this exact format:
{
  "origin": "place name suitable for a place search",
  "destination": "place name suitable for a place search"
}`

const geocodablePrompt = `Can the location '%s' be found on a map without knowing the user's real-time position?
Locations like 'near me', 'here', or 'my house' cannot. Answer only "yes" or "no".`

// BuildRoutePrompt renders the origin/destination extraction prompt.
func BuildRoutePrompt(message string) string {
	return fmt.Sprintf(routePrompt, message)
}

// BuildGeocodablePrompt renders the yes/no geocodability question.
func BuildGeocodablePrompt(place string) string {
	return fmt.Sprintf(geocodablePrompt, place)
}

// ParseRoutePair reads an origin/destination pair out of an LLM completion.
// The model is a noisy oracle: the JSON object is located inside whatever
// surrounding text it produced, and both keys must be present and non-blank.
func ParseRoutePair(content string) (*models.RoutePair, error) {
	jsonContent := extractJSON(content)
	if jsonContent == "" {
		return nil, &models.ParseError{Detail: "no JSON object in completion"}
	}

	var pair models.RoutePair
	if err := json.Unmarshal([]byte(jsonContent), &pair); err != nil {
		return nil, &models.ParseError{Detail: err.Error()}
	}

	pair.Origin = strings.TrimSpace(pair.Origin)
	pair.Destination = strings.TrimSpace(pair.Destination)
	if pair.Origin == "" || pair.Destination == "" {
		return nil, &models.ParseError{Detail: "missing origin or destination"}
	}

	return &pair, nil
}

// ParseYesNo reports whether a completion is an affirmative answer. Anything
// that does not begin with "y" counts as no.
func ParseYesNo(content string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(content)), "y")
}

func extractJSON(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content, "}")
	if end == -1 || end <= start {
		return ""
	}

	return content[start : end+1]
}
