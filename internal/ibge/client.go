package ibge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public endpoint of the IBGE census names API v2.
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v2/censos/nomes"

// ErrNoData indicates the API answered successfully but holds no records
// for the queried name(s). Distinct from transport errors so callers can
// show guidance instead of an error.
var ErrNoData = errors.New("no data found")

// Options narrows a query to a sex ("M"/"F") and/or an IBGE locality code.
// Zero values mean no filter.
type Options struct {
	Sex      string
	Locality string
}

type Client interface {
	Frequencies(name string, opts Options, timeout time.Duration) ([]DecadeCount, error)
	Compare(names []string, opts Options, timeout time.Duration) ([]NameSeries, error)
	Ranking(opts Options, limit int, timeout time.Duration) ([]RankingEntry, error)
}

type ibgeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) (Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("creating IBGE client: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("creating IBGE client: invalid base URL %q", baseURL)
	}
	return &ibgeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}, nil
}

// nameRecord is the wire form of one name's entry in a frequency response.
type nameRecord struct {
	Nome string `json:"nome"`
	Res  []struct {
		Periodo    string `json:"periodo"`
		Frequencia int64  `json:"frequencia"`
	} `json:"res"`
}

// rankingRecord is the wire form of a /ranking response element.
type rankingRecord struct {
	Res []struct {
		Nome       string `json:"nome"`
		Frequencia int64  `json:"frequencia"`
		Ranking    int    `json:"ranking"`
	} `json:"res"`
}

func (c *ibgeClient) Frequencies(name string, opts Options, timeout time.Duration) ([]DecadeCount, error) {
	series, err := c.Compare([]string{name}, opts, timeout)
	if err != nil {
		return nil, err
	}
	return series[0].Decades, nil
}

func (c *ibgeClient) Compare(names []string, opts Options, timeout time.Duration) ([]NameSeries, error) {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		if n := NormalizeName(name); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil, errors.New("no name given")
	}

	// The API accepts several names in one request, separated by '|'.
	requestURL := c.baseURL + "/" + url.PathEscape(strings.Join(normalized, "|"))

	var payload []nameRecord
	if err := c.get(requestURL, opts, timeout, &payload); err != nil {
		return nil, err
	}

	byName := make(map[string]NameSeries, len(payload))
	for _, record := range payload {
		counts := make([]DecadeCount, 0, len(record.Res))
		for _, r := range record.Res {
			counts = append(counts, DecadeCount{
				Decade: ParsePeriod(r.Periodo),
				Count:  r.Frequencia,
			})
		}
		if len(counts) == 0 {
			continue
		}
		byName[NormalizeName(record.Nome)] = NameSeries{
			Name:    record.Nome,
			Decades: normalizeDecades(counts),
		}
	}
	if len(byName) == 0 {
		return nil, ErrNoData
	}

	// Preserve the caller's name order regardless of response order.
	series := make([]NameSeries, 0, len(normalized))
	for _, name := range normalized {
		if s, ok := byName[name]; ok {
			series = append(series, s)
		}
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	return series, nil
}

func (c *ibgeClient) Ranking(opts Options, limit int, timeout time.Duration) ([]RankingEntry, error) {
	var payload []rankingRecord
	if err := c.get(c.baseURL+"/ranking", opts, timeout, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 || len(payload[0].Res) == 0 {
		return nil, ErrNoData
	}

	entries := make([]RankingEntry, 0, len(payload[0].Res))
	for _, r := range payload[0].Res {
		entries = append(entries, RankingEntry{
			Rank:  r.Ranking,
			Name:  r.Nome,
			Count: r.Frequencia,
		})
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (c *ibgeClient) get(requestURL string, opts Options, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	query := req.URL.Query()
	if opts.Sex != "" {
		query.Set("sexo", opts.Sex)
	}
	if opts.Locality != "" {
		query.Set("localidade", opts.Locality)
	}
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("querying IBGE: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("querying IBGE: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding IBGE response: %w", err)
	}
	return nil
}
