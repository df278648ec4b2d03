package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/cache"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/config"
	"github.com/rshade/carbonwise/internal/logging"
)

// auditContext holds common context for audit logging within a command.
type auditContext struct {
	logger  logging.AuditLogger
	traceID string
	params  map[string]string
	start   time.Time
	command string
}

// newAuditContext creates a new audit context.
func newAuditContext(ctx context.Context, command string, params map[string]string) *auditContext {
	return &auditContext{
		logger:  logging.AuditLoggerFromContext(ctx),
		traceID: logging.TraceIDFromContext(ctx),
		params:  params,
		start:   time.Now(),
		command: command,
	}
}

// logFailure logs an audit entry for a failed operation.
func (a *auditContext) logFailure(ctx context.Context, err error) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithError(err.Error()).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// logSuccess logs an audit entry for a successful operation.
func (a *auditContext) logSuccess(ctx context.Context, count int, totalKg float64) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithSuccess(count, totalKg).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// loadCatalog opens the catalog named by --catalog, then the config, then
// the embedded seed.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = config.GetGlobalConfig().Catalog.Path
	}

	cat, err := catalog.Load(path)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("catalog", path).Msg("failed to load catalog")
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	log.Debug().Ctx(ctx).
		Str("catalog", cat.Source()).
		Str("schema_version", cat.SchemaVersion()).
		Int("vehicles", cat.Len()).
		Msg("catalog loaded")
	return cat, nil
}

// newService builds the analysis service over the loaded catalog with the
// configured defaults.
func newService(cmd *cobra.Command) (*analysis.Service, error) {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	if err = config.GetGlobalConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration (run carbonwise config validate): %w", err)
	}
	defaults, err := analysis.DefaultsFromConfig(config.GetDefaults())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration defaults: %w", err)
	}
	return analysis.NewService(cat, analysis.WithDefaults(defaults)), nil
}

// openCache returns the result cache. --cache-ttl enables it for this run;
// otherwise the config decides.
func openCache(cmd *cobra.Command, forceEnabled bool) (*cache.FileStore, error) {
	cfg := config.GetGlobalConfig()

	enabled := cfg.Cache.Enabled || forceEnabled
	ttlSeconds := cfg.Cache.TTLSeconds
	if flagTTL, _ := cmd.Flags().GetInt("cache-ttl"); flagTTL > 0 {
		enabled = true
		ttlSeconds = flagTTL
	}

	dir, err := cfg.CacheDirectory()
	if err != nil {
		return nil, err
	}
	return cache.NewFileStore(dir, enabled, time.Duration(ttlSeconds)*time.Second)
}

// cachedAnalysis runs compute through the result cache.
func cachedAnalysis[T any](
	cmd *cobra.Command,
	svc *analysis.Service,
	operation string,
	request any,
	compute func(context.Context) (T, error),
) (T, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	store, err := openCache(cmd, false)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("result cache unavailable")
		return compute(ctx)
	}

	v, hit, err := cache.Fetch(ctx, store, cache.KeyParams{
		Operation: operation,
		Catalog:   svc.Catalog().Digest(),
		Request:   request,
		Defaults:  svc.Defaults(),
	}, compute)
	if hit {
		log.Debug().Ctx(ctx).Str("operation", operation).Msg("served from cache")
	}
	return v, err
}

// usageFlags are the driving-context flags shared by most analysis commands.
type usageFlags struct {
	state         string
	dailyKm       float64
	years         float64
	usagePattern  string
	gridIntensity float64
}

func (u *usageFlags) register(cmd *cobra.Command, withYears bool) {
	cmd.Flags().StringVar(&u.state, "state", "", "Indian state whose grid powers charging (e.g. Delhi)")
	cmd.Flags().Float64Var(&u.dailyKm, "daily-km", 0, "average km driven per day (default from config)")
	if withYears {
		cmd.Flags().Float64Var(&u.years, "years", 0, "ownership period in years (default from config)")
	}
	cmd.Flags().StringVar(&u.usagePattern, "usage", "", "usage pattern: city, highway or mixed (default from config)")
	cmd.Flags().Float64Var(&u.gridIntensity, "grid-intensity", 0, "override grid intensity in kg CO2/kWh")
}

func (u usageFlags) usage() analysis.Usage {
	return analysis.Usage{
		State:         u.state,
		DailyKm:       u.dailyKm,
		Years:         u.years,
		UsagePattern:  u.usagePattern,
		GridIntensity: u.gridIntensity,
	}
}

func (u usageFlags) auditParams(extra map[string]string) map[string]string {
	params := map[string]string{}
	if u.state != "" {
		params["state"] = u.state
	}
	if u.dailyKm > 0 {
		params["daily_km"] = fmt.Sprint(u.dailyKm)
	}
	if u.years > 0 {
		params["years"] = fmt.Sprint(u.years)
	}
	if u.usagePattern != "" {
		params["usage"] = strings.ToUpper(u.usagePattern)
	}
	if u.gridIntensity > 0 {
		params["grid_intensity"] = fmt.Sprint(u.gridIntensity)
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}
