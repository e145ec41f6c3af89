package knowthepast

import "fmt"

// ErrorKind classifies provider call failures for logging and fallback
// selection. Failures never cross an adapter boundary as errors; they are
// folded into the adapter's fail-soft result.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindStatus
	KindDecode
	KindProvider
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// ProviderError is the internal result error of a single provider call.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
