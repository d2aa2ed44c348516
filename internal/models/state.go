package models

// StateKind discriminates RequestState. Exactly one kind is active at a time.
type StateKind int

const (
	StateIdle StateKind = iota
	StateLoading
	StateFailed
	StateLoaded
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateFailed:
		return "failed"
	case StateLoaded:
		return "loaded"
	}
	return "unknown"
}

func (k StateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RequestState is the outcome of the most recently initiated current-weather
// fetch. Data is only meaningful for StateLoaded.
type RequestState struct {
	Kind StateKind    `json:"kind" swaggertype:"string" enums:"idle,loading,failed,loaded"`
	Data *WeatherView `json:"data,omitempty"`
}

func Idle() RequestState    { return RequestState{Kind: StateIdle} }
func Loading() RequestState { return RequestState{Kind: StateLoading} }
func Failed() RequestState  { return RequestState{Kind: StateFailed} }

func Loaded(view WeatherView) RequestState {
	return RequestState{Kind: StateLoaded, Data: &view}
}

// Flags reports the state in the loading/error/data form the page and the
// JSON API expose.
func (s RequestState) Flags() (loading, failed bool, data *WeatherView) {
	switch s.Kind {
	case StateLoading:
		return true, false, nil
	case StateFailed:
		return false, true, nil
	case StateLoaded:
		return false, false, s.Data
	case StateIdle:
		return false, false, nil
	}
	return false, false, nil
}
