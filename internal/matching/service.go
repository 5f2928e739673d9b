package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/farmfeed/farmfeed/internal/listing"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindCommodity(ctx context.Context, rawName string) (listing.Commodity, error)
	CreateAlias(ctx context.Context, rawPattern string, commodity listing.Commodity) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// keywords is consulted when no learned alias matches. Order matters: the first
// keyword contained in the name wins, so "sunflower oilcake" resolves to feed.
var keywords = []struct {
	word      string
	commodity listing.Commodity
}{
	{"oilcake", listing.CommodityFeed},
	{"meal", listing.CommodityFeed},
	{"pellet", listing.CommodityFeed},
	{"feed", listing.CommodityFeed},
	{"lucerne", listing.CommodityFeed},
	{"maize", listing.CommodityMaize},
	{"mielie", listing.CommodityMaize},
	{"corn", listing.CommodityMaize},
	{"wheat", listing.CommodityWheat},
	{"barley", listing.CommodityBarley},
	{"malt", listing.CommodityBarley},
	{"sunflower", listing.CommoditySunflower},
	{"soy", listing.CommoditySoya},
}

// Resolve maps a free-text product name (e.g. "WM2 White Maize") to a commodity.
// Learned aliases take precedence over the built-in keywords. The boolean is false
// when nothing matched.
func (s *Service) Resolve(ctx context.Context, rawName string) (listing.Commodity, bool, error) {
	name := strings.ToLower(strings.TrimSpace(rawName))
	if name == "" {
		return "", false, nil
	}

	if c := listing.Commodity(name); c.Valid() {
		return c, true, nil
	}

	learned, err := s.repo.FindCommodity(ctx, name)
	if err != nil {
		return "", false, err
	}

	if learned != "" {
		return learned, true, nil
	}

	for _, k := range keywords {
		if strings.Contains(name, k.word) {
			return k.commodity, true, nil
		}
	}

	return "", false, nil
}

// Learn remembers that names containing rawPattern are the given commodity.
func (s *Service) Learn(ctx context.Context, rawPattern string, commodity listing.Commodity) error {
	pattern := strings.ToLower(strings.TrimSpace(rawPattern))
	if pattern == "" {
		return fmt.Errorf("%w: pattern is required", listing.ErrInvalid)
	}

	if !commodity.Valid() {
		return fmt.Errorf("%w: unknown commodity %q", listing.ErrInvalid, commodity)
	}

	return s.repo.CreateAlias(ctx, pattern, commodity)
}
