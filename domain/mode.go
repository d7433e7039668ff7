package domain

// Mode is the deployment mode. It is a closed set: configuration values
// arriving from outside go through ParseMode, so an unrecognized string
// is handled once at the boundary instead of leaking through the flow.
type Mode int

const (
	// ModeNone disables deployment; an explicit opt-out, not an error.
	ModeNone Mode = iota
	// ModePublicOnly pushes the whole project to a single public repository.
	ModePublicOnly
	// ModeSplit pushes the build output to a public repository and the
	// full project to a private one.
	ModeSplit
)

const (
	modeNoneStr       = "none"
	modePublicOnlyStr = "public-only"
	modeSplitStr      = "split"
)

// ParseMode maps a configuration string to a Mode. The second return
// value is false for unrecognized strings.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case modeNoneStr:
		return ModeNone, true
	case modePublicOnlyStr:
		return ModePublicOnly, true
	case modeSplitStr:
		return ModeSplit, true
	default:
		return ModeNone, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModePublicOnly:
		return modePublicOnlyStr
	case ModeSplit:
		return modeSplitStr
	default:
		return modeNoneStr
	}
}
