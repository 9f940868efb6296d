package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/awolk/sms-directions/internal/directions"
	"github.com/awolk/sms-directions/internal/llm"
	"github.com/awolk/sms-directions/internal/models"
	"github.com/awolk/sms-directions/internal/places"
	"github.com/awolk/sms-directions/internal/prompts"
)

const HelpMessage = "SMS Directions:\n" +
	"Commands:\n" +
	"1. 'WALK from [A] to [B]'\n" +
	"2. 'TRANSIT from [A] to [B]'\n" +
	"3. 'DRIVE from [A] to [B]'\n" +
	"4. For more info, visit sms-directions-production.up.railway.app."

const UnrecognizedMessage = "SMS Directions:\nUnrecognized command. Type 'HELP' for instructions."

const VagueLocationMessage = "SMS Directions:\n" +
	"That location is too vague to look up. Try naming a specific place or address."

// Pipeline sequences one inbound message through classification, route
// extraction, geocodability filtering, place resolution, and the directions
// lookup. Every failure is converted to a user-facing reply; Handle never
// returns an error to the transport.
type Pipeline struct {
	provider llm.Provider
	resolver places.Resolver
	fetcher  directions.Fetcher
	logger   *zap.Logger
}

func New(provider llm.Provider, resolver places.Resolver, fetcher directions.Fetcher, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		provider: provider,
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Handle processes one inbound message and returns the reply body. Exactly
// one terminal output is produced per request.
func (p *Pipeline) Handle(ctx context.Context, text string) string {
	cmd := ParseCommand(text)

	switch cmd.Type {
	case models.CommandHelp:
		return HelpMessage
	case models.CommandUnknown:
		return UnrecognizedMessage
	}

	pair, err := p.extractRoute(ctx, text)
	if err != nil {
		p.logger.Warn("route extraction failed", zap.Error(err))
		return errorReply(err)
	}

	for _, place := range []string{pair.Origin, pair.Destination} {
		if !p.isGeocodable(ctx, place) {
			p.logger.Info("rejected vague location", zap.String("place", place))
			return VagueLocationMessage
		}
	}

	origin, err := p.resolver.Resolve(ctx, pair.Origin, nil)
	if err != nil {
		p.logger.Warn("origin resolution failed", zap.String("query", pair.Origin), zap.Error(err))
		return errorReply(err)
	}

	// Bias the destination search toward the origin so ambiguous names
	// favor nearby matches.
	dest, err := p.resolver.Resolve(ctx, pair.Destination, &origin.Location)
	if err != nil {
		p.logger.Warn("destination resolution failed", zap.String("query", pair.Destination), zap.Error(err))
		return errorReply(err)
	}

	route, err := p.fetcher.Fetch(ctx, origin.Location, dest.Location, cmd.Mode)
	if err != nil {
		p.logger.Warn("directions fetch failed", zap.Error(err))
		return errorReply(err)
	}

	if route.NoRoute {
		return fmt.Sprintf("SMS Directions:\nNo route found from %s to %s.", origin.Name, dest.Name)
	}

	p.logger.Info("itinerary built",
		zap.String("mode", string(cmd.Type)),
		zap.String("origin", origin.Name),
		zap.String("destination", dest.Name),
		zap.Int("steps", len(route.Steps)),
	)

	return fmt.Sprintf(
		"SMS Directions:\nFrom: %s\nTo: %s\nMode: %s\nDuration: %s\n\n%s",
		origin.Name, dest.Name, cmd.Type, route.Duration,
		strings.Join(route.Steps, "\n"),
	)
}

func (p *Pipeline) extractRoute(ctx context.Context, text string) (*models.RoutePair, error) {
	out, err := p.provider.Complete(ctx, prompts.BuildRoutePrompt(text))
	if err != nil {
		return nil, err
	}
	return prompts.ParseRoutePair(out)
}

// isGeocodable asks the yes/no oracle whether a place can be resolved without
// the user's real-time position. Fails closed: any provider error or
// non-affirmative answer rejects the place.
func (p *Pipeline) isGeocodable(ctx context.Context, place string) bool {
	out, err := p.provider.Complete(ctx, prompts.BuildGeocodablePrompt(place))
	if err != nil {
		p.logger.Warn("geocodability check failed", zap.String("place", place), zap.Error(err))
		return false
	}
	return prompts.ParseYesNo(out)
}

func errorReply(err error) string {
	return fmt.Sprintf("Error: %s", err.Error())
}
