package manager

import (
	"strings"
	"testing"

	"github.com/larsks/appliances/internal/device"
	"github.com/larsks/appliances/internal/devicefactory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps every message for inspection.
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.messages = append(r.messages, message)
}

func newTestManager() (*Manager, *recordingLogger) {
	rec := &recordingLogger{}
	return New(rec), rec
}

func TestEmptyManager(t *testing.T) {
	m, rec := newTestManager()

	assert.Equal(t, 0, m.TotalPower())
	assert.Len(t, m.Devices(), 0)
	assert.Equal(t, 0, m.Count())

	m.TurnOnAll()
	assert.Empty(t, rec.messages)
}

func TestAddDevice(t *testing.T) {
	m, rec := newTestManager()
	fridge := devicefactory.RefrigeratorFactory{}.Create()

	m.AddDevice(fridge)

	require.Len(t, rec.messages, 1)
	assert.Equal(t, "Добавлено устройство: Refrigerator: Samsung Fridge, Brand: Samsung, Capacity: 300L, Power: 150W", rec.messages[0])
	assert.Equal(t, []*device.Device{fridge}, m.Devices())
}

func TestDevicesPreservesOrder(t *testing.T) {
	m, _ := newTestManager()

	var added []*device.Device
	for i := 0; i < 5; i++ {
		var d *device.Device
		if i%2 == 0 {
			d = devicefactory.DrillFactory{}.Create()
		} else {
			d = devicefactory.RefrigeratorFactory{}.Create()
		}
		added = append(added, d)
		m.AddDevice(d)
	}

	devices := m.Devices()
	require.Len(t, devices, len(added))
	for i := range added {
		assert.Same(t, added[i], devices[i], "device %d", i)
	}
}

func TestDuplicatesAllowed(t *testing.T) {
	m, _ := newTestManager()
	d := devicefactory.DrillFactory{}.Create()

	m.AddDevice(d)
	m.AddDevice(d)
	m.TurnOnAll()

	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 1600, m.TotalPower())
}

func TestDevicesReturnsCopy(t *testing.T) {
	m, _ := newTestManager()
	m.AddDevice(devicefactory.RefrigeratorFactory{}.Create())
	m.AddDevice(devicefactory.DrillFactory{}.Create())

	devices := m.Devices()
	devices[0], devices[1] = devices[1], devices[0]
	_ = append(devices[:1], devicefactory.DrillFactory{}.Create())

	again := m.Devices()
	require.Len(t, again, 2)
	assert.Equal(t, device.KindRefrigerator, again[0].Kind())
	assert.Equal(t, device.KindDrill, again[1].Kind())
}

func TestFridgeAndDrillScenario(t *testing.T) {
	m, rec := newTestManager()
	m.AddDevice(devicefactory.RefrigeratorFactory{}.Create())
	m.AddDevice(devicefactory.DrillFactory{}.Create())

	assert.Equal(t, 0, m.TotalPower())

	m.TurnOnAll()
	assert.Equal(t, 950, m.TotalPower())

	devices := m.Devices()
	for _, want := range []string{"Samsung Fridge", "Samsung", "300", "150"} {
		assert.Contains(t, devices[0].Describe(), want)
	}
	for _, want := range []string{"Bosch Drill", "220", "3000", "800"} {
		assert.Contains(t, devices[1].Describe(), want)
	}

	assert.Equal(t, []string{
		AddedPrefix + devices[0].Describe(),
		AddedPrefix + devices[1].Describe(),
		TurnedOnPrefix + devices[0].Describe(),
		TurnedOnPrefix + devices[1].Describe(),
	}, rec.messages)
}

func TestAddedLoggedBeforeTurnedOn(t *testing.T) {
	m, rec := newTestManager()
	d := devicefactory.DrillFactory{}.Create()
	m.AddDevice(d)
	m.TurnOnAll()

	added, turnedOn := -1, -1
	for i, msg := range rec.messages {
		if strings.HasPrefix(msg, AddedPrefix) && added < 0 {
			added = i
		}
		if strings.HasPrefix(msg, TurnedOnPrefix) && turnedOn < 0 {
			turnedOn = i
		}
	}
	require.GreaterOrEqual(t, added, 0)
	require.GreaterOrEqual(t, turnedOn, 0)
	assert.Less(t, added, turnedOn)
}

func TestTurnOnAllIsIdempotent(t *testing.T) {
	m, rec := newTestManager()
	m.AddDevice(devicefactory.RefrigeratorFactory{}.Create())
	m.AddDevice(devicefactory.DrillFactory{}.Create())

	m.TurnOnAll()
	firstPower := m.TotalPower()
	firstLines := len(rec.messages)

	m.TurnOnAll()
	assert.Equal(t, firstPower, m.TotalPower())
	for _, d := range m.Devices() {
		assert.True(t, d.IsOn())
	}
	assert.Equal(t, firstLines+2, len(rec.messages))
}

func TestTotalPowerTracksIndividualChanges(t *testing.T) {
	m, _ := newTestManager()
	fridge := devicefactory.RefrigeratorFactory{}.Create()
	drill := devicefactory.DrillFactory{}.Create()
	m.AddDevice(fridge)
	m.AddDevice(drill)

	drill.TurnOn()
	assert.Equal(t, 800, m.TotalPower())

	fridge.TurnOn()
	drill.TurnOff()
	assert.Equal(t, 150, m.TotalPower())

	sum := 0
	for _, d := range m.Devices() {
		sum += d.Power()
	}
	assert.Equal(t, sum, m.TotalPower())
}
