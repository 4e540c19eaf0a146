package devicefactory

import (
	"fmt"
	"strings"

	"github.com/larsks/appliances/internal/device"
)

// RefrigeratorFactory builds the standard refrigerator profile
type RefrigeratorFactory struct{}

// Create returns a new refrigerator
func (RefrigeratorFactory) Create() *device.Device {
	return device.NewRefrigerator("Samsung Fridge", 150, "Samsung", 300)
}

// DrillFactory builds the standard drill profile
type DrillFactory struct{}

// Create returns a new drill
func (DrillFactory) Create() *device.Device {
	return device.NewDrill("Bosch Drill", 800, 220, 3000)
}

// ForKind selects the factory that builds devices of the given kind.
func ForKind(kind device.Kind) (Factory, error) {
	switch kind {
	case device.KindRefrigerator:
		return RefrigeratorFactory{}, nil
	case device.KindDrill:
		return DrillFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFactory, kind)
	}
}

// FactoryName returns the registry name used for a kind.
func FactoryName(kind device.Kind) string {
	return strings.ToLower(kind.String())
}

func init() {
	for _, kind := range device.Kinds() {
		factory, err := ForKind(kind)
		if err != nil {
			panic(err)
		}
		if err := Register(FactoryName(kind), factory); err != nil {
			panic(err)
		}
	}
}
