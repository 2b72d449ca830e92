// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-config-gate/internal/config"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

// ConfigDocumentSource fetches the public configuration document over HTTP.
// It satisfies the bootstrap loader's source contract: any transport
// failure, non-2xx status, or undecodable body comes back as an error, and
// the fallback policy stays with the caller.
type ConfigDocumentSource struct {
	client *resty.Client
	url    string

	logger *logger.Logger
}

// NewConfigDocumentSource validates the document URL from bootstrapCfg and
// returns a source reading from it. Returns an error if the URL is empty or
// lacks a scheme or host.
func NewConfigDocumentSource(bootstrapCfg config.ClientBootstrap, log *logger.Logger) (*ConfigDocumentSource, error) {
	raw := strings.TrimSpace(bootstrapCfg.ConfigURL)
	if raw == "" {
		return nil, errors.New("empty config document url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid config document url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("config document url must include host and scheme")
	}

	return &ConfigDocumentSource{
		client: utils.NewHTTPClient("", bootstrapCfg.RequestTimeout),
		url:    u.String(),
		logger: log,
	}, nil
}

// FetchDocument retrieves and decodes the configuration document.
func (s *ConfigDocumentSource) FetchDocument(ctx context.Context) (models.ConfigDocument, error) {
	s.logger.Debug().Str("url", s.url).Msg("fetching config document")

	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("config document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigDocument{}, err
	}

	var doc models.ConfigDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ConfigDocument{}, fmt.Errorf("decode config document: %w", err)
	}

	return doc, nil
}
