package config

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Validate and Load.
const (
	ErrUnsupportedVersion = constError("unsupported config version")
	ErrInvalidValue       = constError("invalid config value")
)
