package manager

import (
	"github.com/larsks/appliances/internal/device"
	"github.com/larsks/appliances/internal/eventlog"
)

// Event log prefixes.
const (
	AddedPrefix    = "Добавлено устройство: "
	TurnedOnPrefix = "Включено: "
)

// Manager owns an ordered collection of devices and reports every change
// to an event log.
type Manager struct {
	devices []*device.Device
	logger  eventlog.Logger
}

// New creates a manager that reports to logger. logger must not be nil.
func New(logger eventlog.Logger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// AddDevice takes ownership of d and appends it to the collection.
// The same device may be added more than once.
func (m *Manager) AddDevice(d *device.Device) {
	m.logger.Log(AddedPrefix + d.Describe())
	m.devices = append(m.devices, d)
}

// TurnOnAll turns on every device in insertion order.
func (m *Manager) TurnOnAll() {
	for _, d := range m.devices {
		d.TurnOn()
		m.logger.Log(TurnedOnPrefix + d.Describe())
	}
}

// TotalPower returns the power currently drawn by all devices.
func (m *Manager) TotalPower() int {
	total := 0
	for _, d := range m.devices {
		total += d.Power()
	}
	return total
}

// Devices returns the devices in insertion order. The returned slice is a
// copy; changing it does not change the manager's collection.
func (m *Manager) Devices() []*device.Device {
	devices := make([]*device.Device, len(m.devices))
	copy(devices, m.devices)
	return devices
}

// Count returns the number of devices held.
func (m *Manager) Count() int {
	return len(m.devices)
}
