package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/kundli-sdk/internal/config"
	"github.com/samvad-hq/kundli-sdk/internal/domain"
	"github.com/samvad-hq/kundli-sdk/internal/logger"
	"github.com/samvad-hq/kundli-sdk/internal/storage"
	"github.com/samvad-hq/kundli-sdk/pkg/kundli"
	"github.com/samvad-hq/kundli-sdk/pkg/publishers"
)

// Runner wires the API client together with call history and publishers.
type Runner struct {
	cfg    *config.Config
	client *kundli.Client
	store  storage.Store
	fanout *publishers.Fanout
	log    logger.Logger
}

// CallOptions tunes a single call.
type CallOptions struct {
	Publish     bool
	SkipHistory bool
}

// NewRunner builds a runner from config.
func NewRunner(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	catalog := kundli.DefaultCatalog()
	if cfg.EndpointsFile != "" {
		extra, err := kundli.LoadCatalog(cfg.EndpointsFile)
		if err != nil {
			return nil, fmt.Errorf("load endpoints file: %w", err)
		}
		catalog = catalog.Merge(extra)
		log.InfoObj("endpoint catalog extended", "endpoints_file", map[string]any{
			"path":  cfg.EndpointsFile,
			"added": extra.Len(),
			"total": catalog.Len(),
		})
	}

	client := kundli.New(kundli.Config{
		BaseURI:   cfg.BaseURI,
		Username:  cfg.Username,
		Password:  cfg.Password,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.APITimeout,
	}, kundli.WithCatalog(catalog), kundli.WithLogger(log))

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		RecordTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	fanout, err := buildFanout(ctx, cfg.PublishersFile, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Runner{
		cfg:    cfg,
		client: client,
		store:  store,
		fanout: fanout,
		log:    log,
	}, nil
}

func buildFanout(ctx context.Context, path string, log logger.Logger) (*publishers.Fanout, error) {
	if path == "" {
		return publishers.NewFanout(nil), nil
	}

	reg, err := publishers.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := reg.Enabled()
	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	log.InfoObj("publishers registry loaded", "publishers", map[string]any{
		"configured": len(reg.All()),
		"enabled":    len(enabled),
	})
	return publishers.NewFanout(pubs), nil
}

// Client returns the underlying API client.
func (r *Runner) Client() *kundli.Client { return r.client }

// Endpoints lists every operation the runner can call.
func (r *Runner) Endpoints() []kundli.Endpoint {
	return r.client.Catalog().All()
}

// History returns the most recent recorded calls, newest first.
func (r *Runner) History(limit int) ([]domain.CallRecord, error) {
	return r.store.Recent(limit)
}

// Call invokes operation and records the outcome. The returned record is
// populated even when err is non-nil.
func (r *Runner) Call(ctx context.Context, operation string, params map[string]string, payload any, opts CallOptions) (domain.CallRecord, error) {
	rec := domain.NewCallRecord(operation, params, nil)
	if ep, ok := r.client.Catalog().Lookup(operation); ok {
		rec.URL = kundli.ResolveURL(r.client.Config().BaseURI, ep.Path, params)
	}

	callErr := r.invoke(ctx, &rec, payload)

	if !opts.SkipHistory {
		if err := r.store.Record(rec); err != nil {
			r.log.WarnObj("failed to record call", "history_error", map[string]any{
				"call_id": rec.ID,
				"error":   err.Error(),
			})
		}
	}
	if callErr != nil {
		return rec, callErr
	}

	if opts.Publish && r.fanout.Size() > 0 {
		delivered, err := r.fanout.Publish(ctx, publishers.NewEvent(rec))
		r.log.InfoObj("call result published", "publish_meta", map[string]any{
			"call_id":   rec.ID,
			"delivered": delivered,
			"total":     r.fanout.Size(),
		})
		if err != nil {
			return rec, fmt.Errorf("publish result: %w", err)
		}
	}
	return rec, nil
}

func (r *Runner) invoke(ctx context.Context, rec *domain.CallRecord, payload any) error {
	body, err := kundli.EncodePayload(payload)
	if err != nil {
		rec.Error = err.Error()
		return err
	}
	rec.Request = json.RawMessage(body)

	start := time.Now()
	resp, err := r.client.Invoke(ctx, rec.Operation, rec.Params, rec.Request)
	rec.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		rec.Error = err.Error()
		if apiErr, ok := kundli.AsAPIError(err); ok {
			rec.StatusCode = apiErr.StatusCode
			rec.Response = apiErr.Body
		}
		return err
	}

	rec.StatusCode = resp.StatusCode
	rec.Response = resp.Body
	return nil
}

// Close releases storage and publisher connections.
func (r *Runner) Close() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.store.Close(), r.fanout.Close())
}
