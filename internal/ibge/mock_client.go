package ibge

import "time"

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	FrequenciesFunc func(name string, opts Options, timeout time.Duration) ([]DecadeCount, error)
	CompareFunc     func(names []string, opts Options, timeout time.Duration) ([]NameSeries, error)
	RankingFunc     func(opts Options, limit int, timeout time.Duration) ([]RankingEntry, error)
}

func (m *MockClient) Frequencies(name string, opts Options, timeout time.Duration) ([]DecadeCount, error) {
	if m.FrequenciesFunc != nil {
		return m.FrequenciesFunc(name, opts, timeout)
	}
	return nil, nil
}

func (m *MockClient) Compare(names []string, opts Options, timeout time.Duration) ([]NameSeries, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(names, opts, timeout)
	}
	return nil, nil
}

func (m *MockClient) Ranking(opts Options, limit int, timeout time.Duration) ([]RankingEntry, error) {
	if m.RankingFunc != nil {
		return m.RankingFunc(opts, limit, timeout)
	}
	return nil, nil
}
