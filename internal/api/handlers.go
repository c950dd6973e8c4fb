package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/aerovoyage/internal/catalog"
	"github.com/neexbeast/aerovoyage/internal/flight"
	"github.com/neexbeast/aerovoyage/internal/route"
)

// Passenger bounds accepted over HTTP.
const (
	minPassengers = 1
	maxPassengers = 9
)

const sameCityMessage = "Please select different departure and destination cities"

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	catalog  CatalogReader
	searcher FlightSearcher
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(cat CatalogReader, searcher FlightSearcher, log *slog.Logger) *Handlers {
	return &Handlers{
		catalog:  cat,
		searcher: searcher,
		log:      log,
	}
}

// searchResponse is a search result plus an optional message for the caller.
type searchResponse struct {
	*flight.Search
	Message string `json:"message,omitempty"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListLocations handles GET /api/v1/locations.
func (h *Handlers) ListLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Locations())
}

// ListCarriers handles GET /api/v1/carriers.
func (h *Handlers) ListCarriers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Carriers())
}

// SearchFlights handles GET /api/v1/flights?from=&to=&class=&passengers=.
// Same origin and destination → 200 with no offers and a message.
func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.searcher.Search(q)
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("search failed", "from", q.Origin, "to", q.Destination, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := searchResponse{Search: result}
	if result.Empty() {
		resp.Message = sameCityMessage
	}

	h.log.Debug("search served",
		"id", result.ID, "from", q.Origin, "to", q.Destination,
		"class", q.Class, "passengers", q.Passengers, "offers", len(result.Offers))
	writeJSON(w, http.StatusOK, resp)
}

// RouteMap handles GET /api/v1/routes/map?from=&to=.
func (h *Handlers) RouteMap(w http.ResponseWriter, r *http.Request) {
	from, to, err := requireEndpoints(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	origin, err := h.catalog.Location(from)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	destination, err := h.catalog.Location(to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if origin.Name == destination.Name {
		writeError(w, http.StatusBadRequest, sameCityMessage)
		return
	}

	fc := route.Map(endpoint(origin), endpoint(destination), route.DefaultPathPoints)
	body, err := fc.MarshalJSON()
	if err != nil {
		h.log.Error("encoding route map failed", "from", from, "to", to, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func endpoint(l catalog.Location) route.Endpoint {
	return route.Endpoint{Name: l.Name, Code: l.Code, Position: l.Position()}
}

func requireEndpoints(r *http.Request) (string, string, error) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		return "", "", errors.New("both from and to are required")
	}
	return from, to, nil
}

// parseQuery reads a search query from the URL. Class defaults to Economy and
// passengers to 1.
func parseQuery(r *http.Request) (flight.Query, error) {
	from, to, err := requireEndpoints(r)
	if err != nil {
		return flight.Query{}, err
	}

	class := catalog.Economy
	if raw := r.URL.Query().Get("class"); raw != "" {
		class, err = catalog.ParseCabinClass(raw)
		if err != nil {
			return flight.Query{}, err
		}
	}

	passengers := minPassengers
	if raw := r.URL.Query().Get("passengers"); raw != "" {
		passengers, err = strconv.Atoi(raw)
		if err != nil {
			return flight.Query{}, fmt.Errorf("%w: %q is not a number", flight.ErrInvalidPassengers, raw)
		}
	}
	if passengers < minPassengers || passengers > maxPassengers {
		return flight.Query{}, fmt.Errorf("%w: must be between %d and %d, got %d",
			flight.ErrInvalidPassengers, minPassengers, maxPassengers, passengers)
	}

	return flight.Query{
		Origin:      from,
		Destination: to,
		Class:       class,
		Passengers:  passengers,
	}, nil
}

func isBadRequest(err error) bool {
	return errors.Is(err, catalog.ErrUnknownLocation) ||
		errors.Is(err, catalog.ErrUnknownCabinClass) ||
		errors.Is(err, flight.ErrInvalidPassengers)
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity. A nil pinger is reported as disabled and never degrades the
// status.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		check := func(name string, p Pinger) string {
			if p == nil {
				return "disabled"
			}
			if err := p.Ping(ctx); err != nil {
				log.Error("health check: ping failed", "backend", name, "err", err)
				status = http.StatusServiceUnavailable
				return "error"
			}
			return "ok"
		}

		dbStatus := check("db", db)
		redisStatus := check("redis", redis)

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
