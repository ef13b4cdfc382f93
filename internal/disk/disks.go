// Package disk enumerates mounted volumes through df, which is the only
// portable source of per-volume capacity without cgo.
package disk

import (
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/goyan/diskdash/internal/types"
)

// List returns the mounted volumes with their capacity figures, sorted by
// mount point.
func List() ([]types.Disk, error) {
	out, err := exec.Command("df", "-k", "-P").Output()
	if err != nil {
		return nil, fmt.Errorf("df: %w", err)
	}
	return Parse(string(out))
}

// Parse reads POSIX `df -k -P` output. Zero-capacity pseudo-filesystems
// and malformed lines are skipped.
func Parse(output string) ([]types.Disk, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("no mounted volumes in df output")
	}

	var disks []types.Disk
	for _, line := range lines[1:] { // skip header
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}

		total, err1 := strconv.ParseInt(fields[1], 10, 64)
		used, err2 := strconv.ParseInt(fields[2], 10, 64)
		avail, err3 := strconv.ParseInt(fields[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if total == 0 {
			continue
		}

		disks = append(disks, types.Disk{
			Filesystem: fields[0],
			MountPoint: strings.Join(fields[5:], " "), // mount points may contain spaces
			Total:      total * 1024,
			Used:       used * 1024,
			Available:  avail * 1024,
		})
	}

	sort.Slice(disks, func(i, j int) bool {
		return disks[i].MountPoint < disks[j].MountPoint
	})
	return disks, nil
}
