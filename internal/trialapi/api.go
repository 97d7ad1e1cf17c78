// Package trialapi provides a client wrapper for the trial-management
// service that hosts tricot observation data.
package trialapi

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"

	"github.com/tricolab/fieldrank/internal/config"
)

// TrialAPIInterface is the interface for the trial client methods used by
// the ranking pipeline.
type TrialAPIInterface interface {
	GetTricotObservations(trialID string) (Response[ObservationsResponse], error)
	DownloadExport(trialID string) (*TrialExport, error)
}

// TrialAPI is a REST client wrapper for the trial-management service.
type TrialAPI struct {
	cfg    *config.TrialAPIEnvConfig
	client *resty.Client
}

// NewTrialAPI constructs a new TrialAPI client with a retrying transport.
func NewTrialAPI(cfg *config.TrialAPIEnvConfig) (*TrialAPI, error) {
	if cfg == nil {
		return nil, fmt.Errorf("trial api env configuration cannot be nil")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = nil

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(cfg.TrialAPIUrl).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout)

	log.Debug().Str("base_url", cfg.TrialAPIUrl).Int("retry_max", cfg.MaxRetries).Msg("trial api client initialized")

	return &TrialAPI{
		cfg:    cfg,
		client: client,
	}, nil
}

// GetTricotObservations fetches one trial's tricot observation set.
func (t *TrialAPI) GetTricotObservations(trialID string) (Response[ObservationsResponse], error) {
	var out Response[ObservationsResponse]

	resp, err := t.client.R().
		SetResult(&out).
		Get(fmt.Sprintf("/v1/trials/%s/observations", url.PathEscape(trialID)))
	if err != nil {
		return Response[ObservationsResponse]{}, fmt.Errorf("get tricot observations: %w", err)
	}
	if resp.IsError() {
		return Response[ObservationsResponse]{}, fmt.Errorf("get tricot observations returned status %d: %s",
			resp.StatusCode(), resp.String())
	}
	if !out.Success {
		return Response[ObservationsResponse]{}, fmt.Errorf("get tricot observations failed: %s", out.Error)
	}
	return out, nil
}

// DownloadExport fetches and decodes a trial's gzipped JSON export.
func (t *TrialAPI) DownloadExport(trialID string) (*TrialExport, error) {
	resp, err := t.client.R().
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/v1/trials/%s/export", url.PathEscape(trialID)))
	if err != nil {
		return nil, fmt.Errorf("download export: %w", err)
	}
	defer resp.RawBody().Close()

	if resp.IsError() {
		return nil, fmt.Errorf("download export returned status %d", resp.StatusCode())
	}

	gz, err := gzip.NewReader(resp.RawBody())
	if err != nil {
		return nil, fmt.Errorf("open gzip export: %w", err)
	}
	defer gz.Close()

	body, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var export TrialExport
	if err := sonic.Unmarshal(body, &export); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	log.Debug().Str("trial_id", export.TrialID).Int("observations", len(export.Observations)).Msg("trial export downloaded")
	return &export, nil
}
