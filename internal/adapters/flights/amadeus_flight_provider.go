package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// AmadeusFlightProvider implements FlightProvider using the Amadeus
// flight-offers search API.
//
// It coordinates:
//   - OAuth client-credential token refresh
//   - External API calls with retry/backoff
//   - Cheapest-offer selection across returned offers
//
// The provider is safe for concurrent use.
type AmadeusFlightProvider struct {
	session   *http.Client
	apiKey    string
	apiSecret string
	baseURL   string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewAmadeusFlightProvider(apiKey, apiSecret string) (*AmadeusFlightProvider, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, errors.New("amadeus credentials are empty")
	}

	provider := &AmadeusFlightProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://test.api.amadeus.com",
	}

	return provider, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a valid bearer token, refreshing when the cached one
// is within a minute of expiry.
func (a *AmadeusFlightProvider) accessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Until(a.tokenExpiry) > time.Minute {
		return a.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.apiKey)
	form.Set("client_secret", a.apiSecret)

	resp, err := a.doWithRetry(ctx, func() (*http.Request, error) {
		return a.newRequest(
			ctx, http.MethodPost,
			a.baseURL+"/v1/security/oauth2/token",
			strings.NewReader(form.Encode()),
			"",
		)
	})
	if err != nil {
		return "", fmt.Errorf("amadeus token: %w", err)
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("amadeus token: decode response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("amadeus token: empty access token in response")
	}

	a.token = tok.AccessToken
	a.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return a.token, nil
}

type offerSearchResponse struct {
	Data []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
		Itineraries            []struct {
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

// CheapestOffer returns the lowest-priced round-trip offer for the route and
// dates, or ErrNoFlightsFound when the search comes back empty.
func (a *AmadeusFlightProvider) CheapestOffer(
	ctx context.Context,
	origin, destination string,
	depart, ret time.Time,
) (_ domain.FlightOffer, err error) {
	defer obs.Time(ctx, "amadeus.CheapestOffer")(&err)

	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))
	if origin == "" || destination == "" {
		return domain.FlightOffer{}, errors.New("cheapest offer: origin and destination must be non-empty")
	}

	token, err := a.accessToken(ctx)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("cheapest offer: %w", err)
	}

	q := url.Values{}
	q.Set("originLocationCode", origin)
	q.Set("destinationLocationCode", destination)
	q.Set("departureDate", depart.Format("2006-01-02"))
	q.Set("returnDate", ret.Format("2006-01-02"))
	q.Set("adults", "1")
	q.Set("max", "10")
	q.Set("currencyCode", "USD")

	searchURL := a.baseURL + "/v2/shopping/flight-offers?" + q.Encode()

	resp, err := a.doWithRetry(ctx, func() (*http.Request, error) {
		return a.newRequest(ctx, http.MethodGet, searchURL, nil, token)
	})
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("cheapest offer: search %s -> %s: %w", origin, destination, err)
	}
	defer resp.Body.Close()

	var search offerSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return domain.FlightOffer{}, fmt.Errorf("cheapest offer: decode response: %w", err)
	}

	if len(search.Data) == 0 {
		return domain.FlightOffer{}, fmt.Errorf(
			"cheapest offer: %s -> %s on %s: %w",
			origin, destination, depart.Format("2006-01-02"), ports.ErrNoFlightsFound,
		)
	}

	best := domain.FlightOffer{}
	found := false
	for _, offer := range search.Data {
		price, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil {
			continue
		}
		if found && price >= best.PriceUSD {
			continue
		}

		carrier := ""
		if len(offer.ValidatingAirlineCodes) > 0 {
			carrier = offer.ValidatingAirlineCodes[0]
		}
		stops := 0
		if len(offer.Itineraries) > 0 {
			stops = len(offer.Itineraries[0].Segments) - 1
			if carrier == "" && len(offer.Itineraries[0].Segments) > 0 {
				carrier = offer.Itineraries[0].Segments[0].CarrierCode
			}
		}

		best = domain.FlightOffer{
			Carrier:    carrier,
			PriceUSD:   price,
			DepartDate: depart,
			ReturnDate: ret,
			Stops:      stops,
		}
		found = true
	}

	if !found {
		return domain.FlightOffer{}, fmt.Errorf(
			"cheapest offer: %s -> %s: no parseable offers: %w",
			origin, destination, ports.ErrNoFlightsFound,
		)
	}

	return best, nil
}
