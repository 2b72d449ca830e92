// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/models"
)

// DefaultEndpoint is the backend address assumed when the configuration
// document cannot be fetched or decoded.
const DefaultEndpoint = "http://localhost:8000"

const (
	defaultLoadTimeout = 10 * time.Second

	// Single cache slot, single coalescing key.
	loadKey = "config-document"
)

// DefaultDocument returns the built-in fallback document: the default
// endpoint and no credential. Authenticated calls made with it fail at the
// backend rather than with a broken endpoint.
func DefaultDocument() models.ConfigDocument {
	return models.ConfigDocument{Endpoint: DefaultEndpoint}
}

// Loader fetches the configuration document through a [DocumentSource] and
// caches the result. All methods are safe for concurrent use.
type Loader struct {
	source  DocumentSource
	timeout time.Duration
	log     *logger.Logger

	group singleflight.Group

	mu  sync.RWMutex
	doc *models.ConfigDocument
}

// NewLoader returns a [Loader] reading from source. timeout bounds a single
// load attempt end to end; a non-positive value selects the default.
func NewLoader(source DocumentSource, timeout time.Duration, log *logger.Logger) *Loader {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}

	return &Loader{
		source:  source,
		timeout: timeout,
		log:     log,
	}
}

// Load returns the cached document, fetching it first if no load has
// completed yet. Concurrent callers share one fetch. A failed fetch is not
// an error: the built-in default document is cached and returned instead.
// The only error condition is ctx ending before the shared fetch settles.
func (l *Loader) Load(ctx context.Context) (models.ConfigDocument, error) {
	if doc, ok := l.cached(); ok {
		return doc, nil
	}

	return l.load(ctx)
}

// Get returns a copy of the cached document. It never triggers a fetch:
// calling it before the first completed [Loader.Load] returns
// [ErrNotLoaded].
func (l *Loader) Get() (models.ConfigDocument, error) {
	if doc, ok := l.cached(); ok {
		return doc, nil
	}

	return models.ConfigDocument{}, ErrNotLoaded
}

// Reload fetches the document again and replaces the cache with the
// outcome, fallback included. Concurrent reloads share one fetch.
func (l *Loader) Reload(ctx context.Context) (models.ConfigDocument, error) {
	return l.load(ctx)
}

func (l *Loader) load(ctx context.Context) (models.ConfigDocument, error) {
	ch := l.group.DoChan(loadKey, func() (any, error) {
		// Detached from the triggering caller: the fetch is shared by
		// every coalesced waiter, so only the load timeout bounds it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		return l.fetch(fetchCtx), nil
	})

	select {
	case <-ctx.Done():
		return models.ConfigDocument{}, fmt.Errorf("error waiting for config document: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return models.ConfigDocument{}, fmt.Errorf("error loading config document: %w", res.Err)
		}

		doc := res.Val.(models.ConfigDocument)
		return doc.Clone(), nil
	}
}

// fetch runs one fetch attempt and caches its outcome. Any failure degrades
// to the default document.
func (l *Loader) fetch(ctx context.Context) models.ConfigDocument {
	doc, err := l.source.FetchDocument(ctx)
	if err != nil {
		l.log.Warn().Err(err).
			Str("fallbackEndpoint", DefaultEndpoint).
			Msg("config document fetch failed, using built-in defaults")
		doc = DefaultDocument()
	} else {
		// A document may omit the endpoint; fill the gap from the built-in
		// defaults the same way config sources merge.
		if mergeErr := mergo.Merge(&doc, DefaultDocument()); mergeErr != nil {
			l.log.Warn().Err(mergeErr).Msg("error merging defaults into config document")
			doc = DefaultDocument()
		}
		l.log.Debug().
			Str("endpoint", doc.Endpoint).
			Bool("credentialPresent", doc.HasCredential()).
			Msg("config document loaded")
	}

	l.mu.Lock()
	l.doc = &doc
	l.mu.Unlock()

	return doc
}

// cached returns a copy of the cached document, if any.
func (l *Loader) cached() (models.ConfigDocument, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.doc == nil {
		return models.ConfigDocument{}, false
	}

	return l.doc.Clone(), true
}
