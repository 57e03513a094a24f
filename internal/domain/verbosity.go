package domain

// Verbosity is the console output verbosity requested by the user
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota - 1
	VerbosityNormal
	VerbosityVerbose
	VerbosityVeryVerbose
	VerbosityDebugVerbose
)

// VerbosityDebug is set by an explicit --debug flag. It sorts above every -v level.
const VerbosityDebug Verbosity = 1 << 8

// MaxVerboseLevel caps the number of repeated -v flags
const MaxVerboseLevel = 3

// VerbosityFromFlags maps the console flags to a Verbosity.
// quiet wins over debug, debug wins over the -v count.
func VerbosityFromFlags(quiet, debug bool, verboseCount int) Verbosity {
	switch {
	case quiet:
		return VerbosityQuiet
	case debug:
		return VerbosityDebug
	case verboseCount <= 0:
		return VerbosityNormal
	case verboseCount > MaxVerboseLevel:
		return VerbosityDebugVerbose
	default:
		return Verbosity(verboseCount)
	}
}

// Level returns the number of -v flags this verbosity corresponds to (0 to 3)
func (v Verbosity) Level() int {
	switch {
	case v == VerbosityDebug:
		return MaxVerboseLevel
	case v <= VerbosityNormal:
		return 0
	case v > MaxVerboseLevel:
		return MaxVerboseLevel
	default:
		return int(v)
	}
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityVeryVerbose:
		return "very-verbose"
	case VerbosityDebugVerbose:
		return "debug-verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}
