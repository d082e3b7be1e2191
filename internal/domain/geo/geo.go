// Package geo implementa la búsqueda por proximidad compartida por todas las
// entidades con ubicación (clínicas, doctores, farmacias).
package geo

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Radio terrestre medio en km (haversine).
const earthRadiusKm = 6371.0

// Punto de referencia por defecto cuando el caller no trae geolocalización (Delhi).
var DefaultPoint = Point{Lat: 28.6139, Lon: 77.2090}

// Radios por defecto según tipo de entidad.
const (
	DefaultRadiusKm         = 10.0
	DefaultPharmacyRadiusKm = 5.0
)

// Point en grados decimales WGS-84.
type Point struct {
	Lat float64
	Lon float64
}

// Locatable es una entidad con coordenadas opcionales.
// ok=false cuando falta alguna coordenada; esa entidad nunca entra a resultados.
type Locatable interface {
	Location() (p Point, ok bool)
}

// Result anota la entidad con su distancia. distance_km existe solo en la
// salida de la consulta, nunca se persiste.
type Result[T Locatable] struct {
	Item       T
	DistanceKm float64
}

// DistanceKm calcula distancia de gran círculo (haversine), en km.
func DistanceKm(a, b Point) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Nearby filtra por radio (borde inclusive) y ordena ascendente por distancia.
// El sort es estable: a igual distancia se conserva el orden de la colección.
// Solo lectura; no muta los items.
func Nearby[T Locatable](items []T, ref Point, radiusKm float64) []Result[T] {
	out := make([]Result[T], 0)

	for _, it := range items {
		p, ok := it.Location()
		if !ok {
			continue
		}
		d := DistanceKm(ref, p)
		if d > radiusKm {
			continue
		}
		out = append(out, Result[T]{Item: it, DistanceKm: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out
}

func rad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ParsePoint interpreta lat/lon como vienen en query params. Ambos vacíos =>
// DefaultPoint (el caller no tiene geolocalización). Uno solo, o valores no
// numéricos o fuera de rango => error.
func ParsePoint(lat, lon string) (Point, error) {
	lat = strings.TrimSpace(lat)
	lon = strings.TrimSpace(lon)

	if lat == "" && lon == "" {
		return DefaultPoint, nil
	}
	if lat == "" || lon == "" {
		return Point{}, errors.New("geo: lat and lon must come together")
	}

	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Point{}, errors.New("geo: invalid lat")
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Point{}, errors.New("geo: invalid lon")
	}
	if la < -90 || la > 90 || lo < -180 || lo > 180 {
		return Point{}, errors.New("geo: coordinates out of range")
	}

	return Point{Lat: la, Lon: lo}, nil
}

// ParseRadiusKm: vacío o ausente => 0 (el servicio aplica su default).
func ParseRadiusKm(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return 0, errors.New("geo: invalid radius_km")
	}
	return r, nil
}
