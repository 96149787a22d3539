package go_jetfuelburn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/vector"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
)

const cEarthRadiusKm float64 = 6371

//EarthRadius returns the mean radius of the Earth used for great-circle distances
func EarthRadius() unit.Quantity {
	return unit.MustCreate(cEarthRadiusKm, unit.DistanceKilometer)
}

//Airport lookup keys for LookupAirport
const (
	ByIATA = "iata"
	ByICAO = "icao"
	ByName = "name"
)

//Airport is an entry of the bundled airport atlas
type Airport struct {
	IATA    string
	ICAO    string
	Name    string
	Country string
	Region  string
	//Latitude and Longitude are in degrees, north and east are positive
	Latitude  float64
	Longitude float64
}

func (a Airport) String() string {
	return fmt.Sprintf("%s/%s %s (%.4f, %.4f)", a.IATA, a.ICAO, a.Name, a.Latitude, a.Longitude)
}

type atlas struct {
	airports []Airport
	index    map[string]map[string]int
}

var airportAtlas = sync.OnceValues(func() (*atlas, error) {
	a := &atlas{index: map[string]map[string]int{
		ByIATA: make(map[string]int),
		ByICAO: make(map[string]int),
		ByName: make(map[string]int),
	}}
	err := resources.MungeCSV("airports.csv.zst",
		[]string{"iata", "icao", "airport", "latitude", "longitude", "country_code", "region_name"},
		func(s []string) error {
			lat, err := strconv.ParseFloat(s[3], 64)
			if err != nil {
				return err
			}
			lon, err := strconv.ParseFloat(s[4], 64)
			if err != nil {
				return err
			}
			ap := Airport{IATA: s[0], ICAO: s[1], Name: s[2], Latitude: lat, Longitude: lon, Country: s[5], Region: s[6]}
			i := len(a.airports)
			a.airports = append(a.airports, ap)
			for by, key := range map[string]string{ByIATA: ap.IATA, ByICAO: ap.ICAO, ByName: ap.Name} {
				if key != "" {
					a.index[by][strings.ToUpper(key)] = i
				}
			}
			return nil
		})
	log.Default().Debug("airport atlas loaded", "count", len(a.airports), "error", err)
	return a, err
})

//LookupAirport finds an airport by its IATA code, ICAO code or full name.
//
//by is one of ByIATA, ByICAO or ByName, the identifier is case insensitive.
//An unknown airport is reported as an error.
func LookupAirport(identifier string, by string) (Airport, error) {
	a, err := airportAtlas()
	if err != nil {
		return Airport{}, err
	}
	index, ok := a.index[by]
	if !ok {
		return Airport{}, fmt.Errorf("LookupAirport: invalid identifier type %q, use %s, %s or %s", by, ByIATA, ByICAO, ByName)
	}
	i, ok := index[strings.ToUpper(strings.TrimSpace(identifier))]
	if !ok {
		return Airport{}, fmt.Errorf("LookupAirport: airport %q not found by %s", identifier, by)
	}
	return a.airports[i], nil
}

//Airports returns the sorted IATA codes of the airports in the atlas
func Airports() []string {
	a, err := airportAtlas()
	if err != nil {
		return nil
	}
	return bmath.SortedMapKeys(a.index[ByIATA])
}

//GreatCircleDistance returns the great-circle distance between two points
//using the haversine formula on a sphere of EarthRadius
//
//Latitudes and longitudes are in degrees.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) (unit.Quantity, error) {
	for _, c := range []struct {
		name  string
		value float64
		limit float64
	}{{"lat1", lat1, 90}, {"lon1", lon1, 180}, {"lat2", lat2, 90}, {"lon2", lon2, 180}} {
		if !(math.Abs(c.value) <= c.limit) {
			return unit.Quantity{}, domainError("GreatCircleDistance", c.name, "must be within ±%v degrees, got %v", c.limit, c.value)
		}
	}
	phi1 := degreesToRadians(lat1)
	phi2 := degreesToRadians(lat2)
	dPhi := phi2 - phi1
	dLambda := degreesToRadians(lon2 - lon1)

	h := bmath.Sqr(math.Sin(dPhi/2)) + math.Cos(phi1)*math.Cos(phi2)*bmath.Sqr(math.Sin(dLambda/2))
	c := 2 * math.Asin(math.Sqrt(bmath.Clamp(h, 0, 1)))
	return EarthRadius().Scale(c), nil
}

//AirportDistance returns the great-circle distance between two airports
//identified by their IATA codes
func AirportDistance(from, to string) (unit.Quantity, error) {
	a, err := LookupAirport(from, ByIATA)
	if err != nil {
		return unit.Quantity{}, err
	}
	b, err := LookupAirport(to, ByIATA)
	if err != nil {
		return unit.Quantity{}, err
	}
	return GreatCircleDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

//Midpoint returns the latitude and longitude (in degrees) of the point
//halfway between two airports along the great circle.
//
//The midpoint of antipodal airports is not defined and is reported as an error.
func Midpoint(from, to Airport) (float64, float64, error) {
	a := vector.FromSpherical(degreesToRadians(from.Latitude), degreesToRadians(from.Longitude))
	b := vector.FromSpherical(degreesToRadians(to.Latitude), degreesToRadians(to.Longitude))
	m := a.Add(b)
	if m.Magnitude() < 1e-12 {
		return 0, 0, domainError("Midpoint", "to", "%s is antipodal to %s", to.IATA, from.IATA)
	}
	lat, lon := m.Normalize().Spherical()
	return radiansToDegrees(lat), radiansToDegrees(lon), nil
}

//InitialCourse returns the true course at the departure of the great circle
//from one airport to another, from 0 to 360 degrees clockwise from north
func InitialCourse(from, to Airport) unit.Quantity {
	phi1 := degreesToRadians(from.Latitude)
	phi2 := degreesToRadians(to.Latitude)
	dLambda := degreesToRadians(to.Longitude - from.Longitude)
	theta := math.Atan2(math.Sin(dLambda)*math.Cos(phi2),
		math.Cos(phi1)*math.Sin(phi2)-math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda))
	return unit.MustCreate(math.Mod(radiansToDegrees(theta)+360, 360), unit.AngularDegree)
}

func degreesToRadians(x float64) float64 {
	return unit.MustCreate(x, unit.AngularDegree).In(unit.AngularRadian)
}

func radiansToDegrees(x float64) float64 {
	return unit.MustCreate(x, unit.AngularRadian).In(unit.AngularDegree)
}
