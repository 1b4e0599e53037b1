// Package status reports disk capacity across the workstation's mounts.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

// MountUsage is one filesystem's capacity snapshot.
type MountUsage struct {
	Mountpoint  string
	Fstype      string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// Collect returns usage for physical filesystems, skipping pseudo mounts.
func Collect() ([]MountUsage, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	var mounts []MountUsage
	for _, p := range parts {
		u, err := disk.Usage(p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		mounts = append(mounts, MountUsage{
			Mountpoint:  p.Mountpoint,
			Fstype:      p.Fstype,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		})
	}
	return mounts, nil
}

// FreeBytes returns the free space on the filesystem holding path. Used for
// the before/after figures around a cleanup run.
func FreeBytes(path string) (uint64, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return u.Free, nil
}

// Render formats the mount table with a fill bar per filesystem.
func Render(mounts []MountUsage) string {
	var s strings.Builder
	s.WriteString(ui.StyleTitle.Render("Disk usage"))
	s.WriteString("\n\n")

	for _, m := range mounts {
		label := fmt.Sprintf("%-20s %8s free of %8s (%s)",
			m.Mountpoint,
			core.HumanSize(int64(m.Free)),
			core.HumanSize(int64(m.Total)),
			m.Fstype)
		s.WriteString("  " + colorBar(m.UsedPercent, 24) + "  " + label + "\n")
	}

	return s.String()
}

// colorBar renders a usage bar whose color shifts with fullness.
func colorBar(pct float64, width int) string {
	barColor := ui.ColorSuccess
	switch {
	case pct >= 90:
		barColor = ui.ColorError
	case pct >= 75:
		barColor = ui.ColorWarn
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	f := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	e := ui.StyleMuted.Render(strings.Repeat("░", width-filled))
	return f + e
}
