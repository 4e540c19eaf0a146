package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/larsks/appliances/internal/device"
	"github.com/larsks/appliances/internal/eventlog"
)

const (
	devicesHeader = "Список устройств:"
	powerUnit     = "W"
)

// Source provides the data shown by a View
type Source interface {
	Devices() []*device.Device
	TotalPower() int
}

// View renders a device collection to a terminal
type View struct {
	source Source
	logger eventlog.Logger
	out    io.Writer

	headerStyle lipgloss.Style
}

// NewView creates a view over source. If out is nil, os.Stdout is used.
func NewView(source Source, logger eventlog.Logger, out io.Writer) *View {
	if out == nil {
		out = os.Stdout
	}

	renderer := lipgloss.NewRenderer(out)

	return &View{
		source:      source,
		logger:      logger,
		out:         out,
		headerStyle: renderer.NewStyle().Bold(true).Underline(true),
	}
}

// ShowDevices prints a header followed by one line per device
func (v *View) ShowDevices() {
	fmt.Fprintf(v.out, "\n%s\n", v.headerStyle.Render(devicesHeader))
	for _, d := range v.source.Devices() {
		fmt.Fprintln(v.out, d.Describe())
	}
}

// ShowTotalPower prints the total power draw and records it in the event log
func (v *View) ShowTotalPower() {
	total := v.source.TotalPower()
	fmt.Fprintf(v.out, "Общая мощность: %d %s\n", total, powerUnit)
	v.logger.Log(fmt.Sprintf("Общая мощность потребления: %d %s", total, powerUnit))
}
