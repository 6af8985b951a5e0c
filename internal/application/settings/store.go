// Package settings holds the live new-tab configuration as reactive cells,
// each persisted through a SettingsStorage on every change.
package settings

import (
	"context"
	"sync"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/domain/observable"
	"github.com/bnema/mytab/internal/logging"
)

// Store owns the in-memory copy of every persisted field.
//
// Cells are safe for concurrent use. Operations that read one cell and write
// another must run inside Mutate so concurrent callers cannot interleave.
type Store struct {
	SearchEngine         *observable.Cell[string]
	Groups               *observable.Cell[[]entity.Group]
	Bookmarks            *observable.Cell[[]entity.Bookmark]
	ActiveGroupID        *observable.Cell[string]
	BackgroundURL        *observable.Cell[string]
	WallpaperSource      *observable.Cell[string]
	ShowClock            *observable.Cell[bool]
	ShowSeconds          *observable.Cell[bool]
	Use24Hour            *observable.Cell[bool]
	BackgroundBrightness *observable.Cell[int]
	BackgroundBlur       *observable.Cell[int]
	HitokotoTypes        *observable.Cell[[]string]

	storage port.SettingsStorage
	ctx     context.Context

	mutateMu sync.Mutex

	watchMu  sync.RWMutex
	watchers map[uint64]func(key string, value any)
	nextID   uint64

	unbind []func()
	flush  []func(ctx context.Context)
}

// NewStore loads every field from storage, falling back to its default, and
// subscribes each field so later changes are saved immediately.
func NewStore(ctx context.Context, storage port.SettingsStorage) *Store {
	log := logging.FromContext(ctx)

	s := &Store{
		storage:  storage,
		ctx:      context.WithoutCancel(ctx),
		watchers: make(map[uint64]func(string, any)),
	}

	groupClone := observable.WithClone(observable.CloneSlice[entity.Group])
	bookmarkClone := observable.WithClone(observable.CloneSlice[entity.Bookmark])
	stringsClone := observable.WithClone(observable.CloneSlice[string])

	s.SearchEngine = observable.NewCell(load(ctx, storage, entity.KeySearchEngine, entity.DefaultSearchEngine))
	s.Groups = observable.NewCell(load(ctx, storage, entity.KeyGroups, entity.DefaultGroups()), groupClone)
	s.Bookmarks = observable.NewCell(load(ctx, storage, entity.KeyBookmarks, entity.DefaultBookmarks()), bookmarkClone)
	s.ActiveGroupID = observable.NewCell(load(ctx, storage, entity.KeyActiveGroupID, entity.DefaultGroupID))
	s.BackgroundURL = observable.NewCell(load(ctx, storage, entity.KeyBackgroundURL, entity.DefaultBackgroundURL()))
	s.WallpaperSource = observable.NewCell(load(ctx, storage, entity.KeyWallpaperSource, entity.DefaultWallpaperSource))
	s.ShowClock = observable.NewCell(load(ctx, storage, entity.KeyShowClock, entity.DefaultShowClock))
	s.ShowSeconds = observable.NewCell(load(ctx, storage, entity.KeyShowSeconds, entity.DefaultShowSeconds))
	s.Use24Hour = observable.NewCell(load(ctx, storage, entity.KeyUse24Hour, entity.DefaultUse24Hour))
	s.BackgroundBrightness = observable.NewCell(load(ctx, storage, entity.KeyBackgroundBrightness, entity.DefaultBackgroundBrightness))
	s.BackgroundBlur = observable.NewCell(load(ctx, storage, entity.KeyBackgroundBlur, entity.DefaultBackgroundBlur))
	s.HitokotoTypes = observable.NewCell(load(ctx, storage, entity.KeyHitokotoTypes, entity.DefaultHitokotoTypes()), stringsClone)

	bind(s, entity.KeySearchEngine, s.SearchEngine)
	bind(s, entity.KeyGroups, s.Groups)
	bind(s, entity.KeyBookmarks, s.Bookmarks)
	bind(s, entity.KeyActiveGroupID, s.ActiveGroupID)
	bind(s, entity.KeyBackgroundURL, s.BackgroundURL)
	bind(s, entity.KeyWallpaperSource, s.WallpaperSource)
	bind(s, entity.KeyShowClock, s.ShowClock)
	bind(s, entity.KeyShowSeconds, s.ShowSeconds)
	bind(s, entity.KeyUse24Hour, s.Use24Hour)
	bind(s, entity.KeyBackgroundBrightness, s.BackgroundBrightness)
	bind(s, entity.KeyBackgroundBlur, s.BackgroundBlur)
	bind(s, entity.KeyHitokotoTypes, s.HitokotoTypes)

	log.Debug().
		Int("groups", len(s.Groups.Get())).
		Int("bookmarks", len(s.Bookmarks.Get())).
		Str("active_group", s.ActiveGroupID.Get()).
		Msg("settings store loaded")

	return s
}

// load reads key from storage, returning def when nothing usable is stored.
func load[T any](ctx context.Context, storage port.SettingsStorage, key string, def T) T {
	var v T
	if storage.Load(ctx, key, &v) {
		return v
	}
	return def
}

// bind persists every change of cell under key and forwards it to watchers.
func bind[T any](s *Store, key string, cell *observable.Cell[T]) {
	unsubscribe := cell.Subscribe(func(v T) {
		s.storage.Save(s.ctx, key, v)
		s.notify(key, v)
	})
	s.unbind = append(s.unbind, unsubscribe)
	s.flush = append(s.flush, func(ctx context.Context) {
		s.storage.Save(ctx, key, cell.Get())
	})
}

// Mutate runs fn while holding the store's mutation lock. fn must not call
// Mutate itself.
func (s *Store) Mutate(fn func()) {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()
	fn()
}

// ActiveGroupBookmarks returns the bookmarks of the active group.
func (s *Store) ActiveGroupBookmarks() []entity.Bookmark {
	return entity.FilterByGroup(s.Bookmarks.Get(), s.ActiveGroupID.Get())
}

// Snapshot copies every field plus the active group view.
func (s *Store) Snapshot() entity.Settings {
	bookmarks := s.Bookmarks.Get()
	active := s.ActiveGroupID.Get()
	return entity.Settings{
		SearchEngine:         s.SearchEngine.Get(),
		Groups:               s.Groups.Get(),
		Bookmarks:            bookmarks,
		ActiveGroupID:        active,
		ActiveGroupBookmarks: entity.FilterByGroup(bookmarks, active),
		BackgroundURL:        s.BackgroundURL.Get(),
		WallpaperSource:      s.WallpaperSource.Get(),
		ShowClock:            s.ShowClock.Get(),
		ShowSeconds:          s.ShowSeconds.Get(),
		Use24Hour:            s.Use24Hour.Get(),
		BackgroundBrightness: s.BackgroundBrightness.Get(),
		BackgroundBlur:       s.BackgroundBlur.Get(),
		HitokotoTypes:        s.HitokotoTypes.Get(),
	}
}

// Watch calls fn with the storage key and new value after any field
// changes. The returned function stops the notifications.
func (s *Store) Watch(fn func(key string, value any)) (unsubscribe func()) {
	s.watchMu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.watchMu.Unlock()

	return func() {
		s.watchMu.Lock()
		delete(s.watchers, id)
		s.watchMu.Unlock()
	}
}

func (s *Store) notify(key string, value any) {
	s.watchMu.RLock()
	fns := make([]func(string, any), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.watchMu.RUnlock()

	for _, fn := range fns {
		fn(key, value)
	}
}

// RestoreInvariants repairs group references: the default group is put
// back first when missing, bookmarks pointing at unknown groups move to the
// default group and a vanished active group resets to default. It reports
// whether anything changed.
func (s *Store) RestoreInvariants(ctx context.Context) bool {
	log := logging.FromContext(ctx)
	changed := false

	groups := s.Groups.Get()
	if entity.FindGroup(groups, entity.DefaultGroupID) < 0 {
		def := entity.DefaultGroups()[0]
		s.Groups.Set(append([]entity.Group{def}, groups...))
		log.Warn().Msg("default group missing, restored")
		changed = true
	}

	groups = s.Groups.Get()
	orphans := 0
	s.Bookmarks.Update(func(bookmarks []entity.Bookmark) []entity.Bookmark {
		for i := range bookmarks {
			if entity.FindGroup(groups, bookmarks[i].GroupID) < 0 {
				bookmarks[i].GroupID = entity.DefaultGroupID
				orphans++
			}
		}
		return bookmarks
	})
	if orphans > 0 {
		log.Warn().Int("count", orphans).Msg("orphan bookmarks moved to default group")
		changed = true
	}

	if entity.FindGroup(groups, s.ActiveGroupID.Get()) < 0 {
		s.ActiveGroupID.Set(entity.DefaultGroupID)
		changed = true
	}

	return changed
}

// Close writes every field once more and detaches persistence.
func (s *Store) Close(ctx context.Context) {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	for _, flush := range s.flush {
		flush(ctx)
	}
	for _, unsubscribe := range s.unbind {
		unsubscribe()
	}
	s.unbind = nil
	s.flush = nil

	logging.FromContext(ctx).Debug().Msg("settings store flushed")
}

// Reset puts every field back to its default. Each change is persisted and
// reported to watchers like any other write.
func (s *Store) Reset(ctx context.Context) {
	s.Mutate(func() {
		s.SearchEngine.Set(entity.DefaultSearchEngine)
		s.Groups.Set(entity.DefaultGroups())
		s.Bookmarks.Set(entity.DefaultBookmarks())
		s.ActiveGroupID.Set(entity.DefaultGroupID)
		s.BackgroundURL.Set(entity.DefaultBackgroundURL())
		s.WallpaperSource.Set(entity.DefaultWallpaperSource)
		s.ShowClock.Set(entity.DefaultShowClock)
		s.ShowSeconds.Set(entity.DefaultShowSeconds)
		s.Use24Hour.Set(entity.DefaultUse24Hour)
		s.BackgroundBrightness.Set(entity.DefaultBackgroundBrightness)
		s.BackgroundBlur.Set(entity.DefaultBackgroundBlur)
		s.HitokotoTypes.Set(entity.DefaultHitokotoTypes())
	})
	logging.FromContext(ctx).Info().Msg("settings reset to defaults")
}
