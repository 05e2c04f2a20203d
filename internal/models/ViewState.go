package models

// ForecastViewState is what the rendering side observes for the latest fetch.
// Values handed out by the store are copies; mutating one has no effect on the store.
type ForecastViewState struct {
	Loading bool
	// City is the provider's city name on success, the failure message on failure,
	// and empty until the first fetch resolves.
	City    string
	Entries []ForecastEntry
	Failed  bool

	// Requested is the city the latest fetch was issued for.
	Requested string
	// Generation increases with every fetch; zero means nothing was ever requested.
	Generation uint64
}

func (s ForecastViewState) Idle() bool {
	return s.Generation == 0
}

func (s ForecastViewState) Clone() ForecastViewState {
	if s.Entries != nil {
		entries := make([]ForecastEntry, len(s.Entries))
		for i, e := range s.Entries {
			entries[i] = e.Clone()
		}
		s.Entries = entries
	}
	return s
}
