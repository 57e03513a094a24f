package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wpb/internal/domain"
)

func TestDetector_Family_FromGOOS(t *testing.T) {
	tests := []struct {
		goos     string
		expected domain.Family
	}{
		{"linux", domain.FamilyLinux},
		{"darwin", domain.FamilyDarwin},
		{"windows", domain.FamilyWindows},
		{"freebsd", domain.FamilyBSD},
		{"openbsd", domain.FamilyBSD},
		{"netbsd", domain.FamilyBSD},
		{"dragonfly", domain.FamilyBSD},
		{"solaris", domain.FamilySolaris},
		{"illumos", domain.FamilySolaris},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			d := &Detector{
				goos:      tt.goos,
				separator: '/',
				uname: func() string {
					t.Fatal("uname should not be consulted when GOOS is mapped")
					return ""
				},
			}
			assert.Equal(t, tt.expected, d.Family())
		})
	}
}

func TestDetector_Family_Fallbacks(t *testing.T) {
	t.Run("backslash separator means windows", func(t *testing.T) {
		d := &Detector{goos: "plan9", separator: '\\', uname: func() string { return "Linux" }}
		assert.Equal(t, domain.FamilyWindows, d.Family())
	})

	t.Run("kernel name is used last", func(t *testing.T) {
		d := &Detector{goos: "", separator: '/', uname: func() string { return "SunOS\n" }}
		assert.Equal(t, domain.FamilySolaris, d.Family())
	})

	t.Run("no signal at all", func(t *testing.T) {
		d := &Detector{separator: '/'}
		assert.Equal(t, domain.FamilyUnknown, d.Family())
	})
}

func TestFamilyFromOSName(t *testing.T) {
	tests := map[string]domain.Family{
		"Darwin":    domain.FamilyDarwin,
		"DragonFly": domain.FamilyBSD,
		"FreeBSD":   domain.FamilyBSD,
		"NetBSD":    domain.FamilyBSD,
		"OpenBSD":   domain.FamilyBSD,
		"Linux":     domain.FamilyLinux,
		"SunOS":     domain.FamilySolaris,
		"Haiku":     domain.FamilyUnknown,
		"":          domain.FamilyUnknown,
	}

	for name, expected := range tests {
		assert.Equal(t, expected, FamilyFromOSName(name), "os name %q", name)
	}
}

func TestDetector_Family_IsDeterministic(t *testing.T) {
	d := NewDetector()
	assert.Equal(t, d.Family(), d.Family())
}
