package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/rubenmartin/motech/pkg/locale"
	"github.com/rubenmartin/motech/pkg/logger"
	"github.com/rubenmartin/motech/pkg/strutil"
)

// DefaultLocale is used when no default locale option is given.
var DefaultLocale = locale.Locale{Language: "en"}

// Catalog resolves localized messages from a set of bundles.
type Catalog struct {
	mu            sync.RWMutex
	bundles       Bundles
	adapter       Adapter
	defaultLocale locale.Locale
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// New loads bundles through adapter and returns a ready Catalog.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		adapter:       adapter,
		defaultLocale: DefaultLocale,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload reads the bundles again and replaces the current set. On error the
// previous bundles stay in place.
func (c *Catalog) Reload(ctx context.Context) error {
	loaded, err := c.adapter.Load(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load message bundles", logger.Error(err))
		return err
	}
	if len(loaded) == 0 {
		return ErrNoBundles
	}

	bundles := make(Bundles, len(loaded))
	for id, msgs := range loaded {
		if id != Root {
			id = locale.Parse(id).Canonical().String()
		}
		if _, exists := bundles[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateBundle, id)
		}
		bundles[id] = maps.Clone(msgs)
	}

	c.mu.Lock()
	c.bundles = bundles
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "message bundles loaded",
		logger.Component("messages"),
		slog.Int("bundles", len(bundles)),
	)
	return nil
}

// chain lists bundle keys in lookup order without duplicates.
func (c *Catalog) chain(l locale.Locale) []string {
	ids := make([]string, 0, 7)
	add := func(ls []locale.Locale) {
		for _, fl := range ls {
			if id := fl.String(); !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	add(l.Canonical().Fallbacks())
	add(c.defaultLocale.Fallbacks())
	return append(ids, Root)
}

func (c *Catalog) lookup(l locale.Locale, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.chain(l) {
		if msg, ok := c.bundles[id][key]; ok {
			return msg, true
		}
	}
	return "", false
}

func (c *Catalog) missing(ctx context.Context, l locale.Locale, key string) string {
	if c.logMissing {
		c.logger.WarnContext(ctx, "missing message",
			logger.Key(key),
			logger.Locale(l.String()),
		)
	}
	if c.fallbackToKey {
		return key
	}
	return ""
}

// Get returns the message for key in locale l with {N} placeholders replaced
// by args.
func (c *Catalog) Get(ctx context.Context, l locale.Locale, key string, args ...any) string {
	msg, ok := c.lookup(l, key)
	if !ok {
		return c.missing(ctx, l, key)
	}
	return strutil.Format(msg, args...)
}

// GetNamed returns the message for key in locale l with {name} placeholders
// replaced from args.
func (c *Catalog) GetNamed(ctx context.Context, l locale.Locale, key string, args map[string]any) string {
	msg, ok := c.lookup(l, key)
	if !ok {
		return c.missing(ctx, l, key)
	}
	return strutil.FormatMap(msg, args)
}

// T is Get for the locale stored in ctx, or the default locale.
func (c *Catalog) T(ctx context.Context, key string, args ...any) string {
	l, ok := locale.FromContext(ctx)
	if !ok {
		l = c.defaultLocale
	}
	return c.Get(ctx, l, key, args...)
}

// Has reports whether key resolves for locale l.
func (c *Catalog) Has(l locale.Locale, key string) bool {
	_, ok := c.lookup(l, key)
	return ok
}

// DefaultLocale returns the catalog's default locale.
func (c *Catalog) DefaultLocale() locale.Locale {
	return c.defaultLocale
}

// Locales lists the locales that have their own bundle, sorted by identifier.
// The root bundle is not included.
func (c *Catalog) Locales() []locale.Locale {
	c.mu.RLock()
	ids := make([]string, 0, len(c.bundles))
	for id := range c.bundles {
		if id != Root {
			ids = append(ids, id)
		}
	}
	c.mu.RUnlock()

	slices.Sort(ids)
	out := make([]locale.Locale, len(ids))
	for i, id := range ids {
		out[i] = locale.Parse(id)
	}
	return out
}

// Messages returns every message visible from locale l, already resolved
// through the fallback chain. The map is a fresh copy.
func (c *Catalog) Messages(l locale.Locale) map[string]string {
	chain := c.chain(l)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(out, c.bundles[chain[i]])
	}
	return out
}

// JSON encodes Messages(l) for client-side use.
func (c *Catalog) JSON(l locale.Locale) ([]byte, error) {
	data, err := json.Marshal(c.Messages(l))
	if err != nil {
		return nil, errors.Join(ErrMarshalMessages, err)
	}
	return data, nil
}
