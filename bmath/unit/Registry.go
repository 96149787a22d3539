package unit

import (
	"fmt"
	"sync"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
)

//definition describes one measurement unit.
//
//value in SI = value * factor + offset
type definition struct {
	name      string
	aliases   []string
	dimension Dimension
	factor    float64
	offset    float64
	accuracy  int
}

func (d *definition) toDefault(value float64) float64 {
	return value*d.factor + d.offset
}

func (d *definition) fromDefault(value float64) float64 {
	return (value - d.offset) / d.factor
}

//Registry is the process-wide table of the supported units.
//
//The registry is immutable once created. There is exactly one
//registry per process, returned by DefaultRegistry.
type Registry struct {
	definitions map[string]*definition
	canonical   map[string]*definition
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

//DefaultRegistry returns the unit registry, creating it on the first call
func DefaultRegistry() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = createRegistry()
	})
	return defaultRegistry
}

func createRegistry() *Registry {
	r := &Registry{
		definitions: make(map[string]*definition),
		canonical:   make(map[string]*definition),
	}
	groups := [][]definition{
		dimensionlessDefinitions(),
		distanceDefinitions(),
		massDefinitions(),
		timeDefinitions(),
		temperatureDefinitions(),
		angularDefinitions(),
		areaDefinitions(),
		velocityDefinitions(),
		accelerationDefinitions(),
		forceDefinitions(),
		densityDefinitions(),
		pressureDefinitions(),
		tsfcDefinitions(),
		massFlowDefinitions(),
		frequencyDefinitions(),
	}
	for _, group := range groups {
		for i := range group {
			r.register(&group[i])
		}
	}
	return r
}

func (r *Registry) register(d *definition) {
	for _, name := range append([]string{d.name}, d.aliases...) {
		if _, ok := r.definitions[name]; ok {
			panic(fmt.Errorf("Registry: unit %q is registered twice", name))
		}
		r.definitions[name] = d
	}
	r.canonical[d.name] = d
}

func (r *Registry) lookup(units string) (*definition, error) {
	d, ok := r.definitions[units]
	if !ok {
		return nil, fmt.Errorf("Quantity: unit %q is not supported: %w", units, ErrUnknownUnit)
	}
	return d, nil
}

//Create creates a quantity from a magnitude and a unit name
func (r *Registry) Create(value float64, units string) (Quantity, error) {
	d, err := r.lookup(units)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d.toDefault(value), dimension: d.dimension, units: d.name}, nil
}

//DimensionOf returns the dimension of the unit
func (r *Registry) DimensionOf(units string) (Dimension, error) {
	d, err := r.lookup(units)
	if err != nil {
		return Dimension{}, err
	}
	return d.dimension, nil
}

//Units returns the sorted canonical names of all units of the dimension
func (r *Registry) Units(dimension Dimension) []string {
	var names []string
	for _, name := range bmath.SortedMapKeys(r.canonical) {
		if r.canonical[name].dimension.Matches(dimension) {
			names = append(names, name)
		}
	}
	return names
}

//Create creates a quantity using the default registry.
//
//units is any unit name or alias known to the registry,
//for example unit.DistanceNauticalMile or "nmi".
func Create(value float64, units string) (Quantity, error) {
	return DefaultRegistry().Create(value, units)
}

//MustCreate creates a quantity and panics if the unit is not supported
func MustCreate(value float64, units string) Quantity {
	q, err := Create(value, units)
	if err != nil {
		panic(err)
	}
	return q
}
