package domain

// Family is the coarse classification of the host operating system
type Family string

const (
	FamilyLinux   Family = "Linux"
	FamilyDarwin  Family = "Darwin"
	FamilyWindows Family = "Windows"
	FamilyBSD     Family = "BSD"
	FamilySolaris Family = "Solaris"
	FamilyUnknown Family = "Unknown"
)

// ResolvesDockerHost reports whether Docker on this family exposes the
// host.docker.internal name to containers
func (f Family) ResolvesDockerHost() bool {
	return f == FamilyDarwin || f == FamilyWindows
}

func (f Family) String() string {
	return string(f)
}
