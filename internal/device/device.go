package device

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete appliance variant carried by a Device.
type Kind int

const (
	KindRefrigerator Kind = iota
	KindDrill
)

// Family groups kinds into appliance branches.
type Family int

const (
	FamilyHomeAppliance Family = iota
	FamilyPowerTool
)

var kindNames = map[Kind]string{
	KindRefrigerator: "Refrigerator",
	KindDrill:        "Drill",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindRefrigerator, KindDrill}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Family returns the appliance branch the kind belongs to.
func (k Kind) Family() Family {
	switch k {
	case KindDrill:
		return FamilyPowerTool
	default:
		return FamilyHomeAppliance
	}
}

func (f Family) String() string {
	switch f {
	case FamilyPowerTool:
		return "PowerTool"
	default:
		return "HomeAppliance"
	}
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Device is a single appliance. The kind tag selects which of the
// variant fields are meaningful; all fields except the on/off state are
// fixed at construction.
type Device struct {
	kind       Kind
	name       string
	ratedPower int
	on         bool

	// home appliance branch
	brand    string
	capacity int

	// power tool branch
	voltage int
	rpm     int
}

// NewRefrigerator creates a refrigerator. Power is in watts, capacity in litres.
func NewRefrigerator(name string, power int, brand string, capacity int) *Device {
	return &Device{
		kind:       KindRefrigerator,
		name:       name,
		ratedPower: power,
		brand:      brand,
		capacity:   capacity,
	}
}

// NewDrill creates a drill. Power is in watts, voltage in volts.
func NewDrill(name string, power int, voltage int, rpm int) *Device {
	return &Device{
		kind:       KindDrill,
		name:       name,
		ratedPower: power,
		voltage:    voltage,
		rpm:        rpm,
	}
}

// Kind returns the variant tag of the device.
func (d *Device) Kind() Kind { return d.kind }

// Name returns the device name given at construction.
func (d *Device) Name() string { return d.name }

// RatedPower returns the nameplate power in watts, regardless of state.
func (d *Device) RatedPower() int { return d.ratedPower }

// IsOn reports whether the device is switched on.
func (d *Device) IsOn() bool { return d.on }

// Brand returns the manufacturer of a home appliance; empty for other kinds.
func (d *Device) Brand() string { return d.brand }

// Capacity returns the capacity of a home appliance in litres.
func (d *Device) Capacity() int { return d.capacity }

// Voltage returns the supply voltage of a power tool.
func (d *Device) Voltage() int { return d.voltage }

// RPM returns the rotation speed of a power tool.
func (d *Device) RPM() int { return d.rpm }

// TurnOn switches the device on. Calling it on a device that is already
// on has no further effect.
func (d *Device) TurnOn() {
	d.on = true
}

// TurnOff switches the device off.
func (d *Device) TurnOff() {
	d.on = false
}

// Power returns the power currently drawn by the device: the rated power
// while on, zero while off.
func (d *Device) Power() int {
	if !d.on {
		return 0
	}
	return d.ratedPower
}

// Describe returns a human readable, stable description containing every
// field of the device's variant.
func (d *Device) Describe() string {
	switch d.kind {
	case KindRefrigerator:
		return fmt.Sprintf("Refrigerator: %s, Brand: %s, Capacity: %dL, Power: %dW",
			d.name, d.brand, d.capacity, d.ratedPower)
	case KindDrill:
		return fmt.Sprintf("Drill: %s, Voltage: %dV, RPM: %d, Power: %dW",
			d.name, d.voltage, d.rpm, d.ratedPower)
	default:
		return fmt.Sprintf("%s: %s, Power: %dW", d.kind, d.name, d.ratedPower)
	}
}

// String returns a string representation of the device
func (d *Device) String() string {
	return d.Describe()
}
