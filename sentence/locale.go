package sentence

import (
	"sync"

	"golang.org/x/text/language"
)

type entry struct {
	tag     language.Tag
	factory Factory
}

type registry struct {
	mu      sync.RWMutex
	entries []entry
	matcher language.Matcher
}

// The first entry is the fallback for locales nothing else matches.
var locales = newRegistry([]entry{
	{tag: language.Und, factory: NewUniseg},
	{tag: language.Japanese, factory: NewUAX29},
})

func newRegistry(entries []entry) *registry {
	r := &registry{entries: entries}
	r.rebuild()
	return r
}

func (r *registry) rebuild() {
	tags := make([]language.Tag, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.tag
	}
	r.matcher = language.NewMatcher(tags)
}

// Register makes f the breaker for locale tag, replacing any earlier
// registration for the same tag.
func Register(tag language.Tag, f Factory) {
	locales.mu.Lock()
	defer locales.mu.Unlock()

	for i, e := range locales.entries {
		if e.tag == tag {
			locales.entries[i].factory = f
			return
		}
	}
	locales.entries = append(locales.entries, entry{tag: tag, factory: f})
	locales.rebuild()
}

// ForLocale returns the breaker factory registered for the closest match
// to tag.
func ForLocale(tag language.Tag) Factory {
	locales.mu.RLock()
	defer locales.mu.RUnlock()

	_, i, conf := locales.matcher.Match(tag)
	if conf == language.No {
		i = 0
	}
	return locales.entries[i].factory
}
