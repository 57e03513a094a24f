package environment

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"wpb/internal/domain"
)

// Detector reports the family of the operating system the binary runs on
type Detector struct {
	goos      string
	separator rune
	uname     func() string
}

// NewDetector creates a Detector reading the current host
func NewDetector() *Detector {
	return &Detector{
		goos:      runtime.GOOS,
		separator: filepath.Separator,
		uname:     uname,
	}
}

// Family returns the operating system family. The runtime's own OS name is
// preferred; when it is missing or unmapped the path separator and then the
// kernel name are used.
func (d *Detector) Family() domain.Family {
	if family, ok := familyFromGOOS(d.goos); ok {
		return family
	}

	if d.separator == '\\' {
		return domain.FamilyWindows
	}

	if d.uname == nil {
		return domain.FamilyUnknown
	}

	return FamilyFromOSName(d.uname())
}

// FamilyFromOSName maps a kernel name, as printed by `uname -s`, to a family
func FamilyFromOSName(name string) domain.Family {
	switch strings.TrimSpace(name) {
	case "Darwin":
		return domain.FamilyDarwin
	case "DragonFly", "FreeBSD", "NetBSD", "OpenBSD":
		return domain.FamilyBSD
	case "Linux":
		return domain.FamilyLinux
	case "SunOS":
		return domain.FamilySolaris
	default:
		return domain.FamilyUnknown
	}
}

func familyFromGOOS(goos string) (domain.Family, bool) {
	switch goos {
	case "linux", "android":
		return domain.FamilyLinux, true
	case "darwin", "ios":
		return domain.FamilyDarwin, true
	case "windows":
		return domain.FamilyWindows, true
	case "dragonfly", "freebsd", "netbsd", "openbsd":
		return domain.FamilyBSD, true
	case "solaris", "illumos":
		return domain.FamilySolaris, true
	default:
		return "", false
	}
}

func uname() string {
	out, err := exec.Command("uname", "-s").Output()
	if err != nil {
		return ""
	}
	return string(out)
}
