package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	basecache "github.com/riskibarqy/league-dashboard/internal/platform/cache"
)

const (
	playerKeyPrefix   = "player:"
	matchKeyPrefix    = "match:"
	goalKeyPrefix     = "goal:"
	headlineKeyPrefix = "headline:"
)

type cachedByID[T any] struct {
	value  T
	exists bool
}

// loadSlice runs load through the store and hands each caller its own copy
// so callers can sort or trim results without touching the cached value.
func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

func loadByID[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedByID[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedByID[T])
	return cached.value, cached.exists, nil
}

func idsKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

type DivisionRepository struct {
	next  division.Repository
	cache *basecache.Store
}

func NewDivisionRepository(next division.Repository, cache *basecache.Store) *DivisionRepository {
	return &DivisionRepository{next: next, cache: cache}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	return loadSlice(ctx, r.cache, "division:list", r.next.List)
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID string) (division.Division, bool, error) {
	return loadByID(ctx, r.cache, "division:id:"+divisionID, func(ctx context.Context) (division.Division, bool, error) {
		return r.next.GetByID(ctx, divisionID)
	})
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID string) ([]team.Team, error) {
	return loadSlice(ctx, r.cache, "team:list:"+divisionID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByDivision(ctx, divisionID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return loadByID(ctx, r.cache, "team:id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

// PlayerRepository drops every cached player read on any write. Rosters are
// small and writes come from a single admin screen.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	return loadSlice(ctx, r.cache, playerKeyPrefix+"teams:"+idsKey(teamIDs), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeams(ctx, teamIDs)
	})
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	return loadSlice(ctx, r.cache, playerKeyPrefix+"ids:"+idsKey(playerIDs), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByIDs(ctx, playerIDs)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return loadByID(ctx, r.cache, playerKeyPrefix+"id:"+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, bool, error) {
	updated, ok, err := r.next.Update(ctx, item)
	if err != nil {
		return player.Player{}, false, err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return updated, ok, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, playerID)
	if err != nil {
		return false, err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return deleted, nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByDivision(ctx context.Context, divisionID string) ([]match.Match, error) {
	return loadSlice(ctx, r.cache, matchKeyPrefix+"division:"+divisionID, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByDivision(ctx, divisionID)
	})
}

func (r *MatchRepository) ListRecentByDivision(ctx context.Context, divisionID string, limit int) ([]match.Match, error) {
	key := matchKeyPrefix + "recent:" + divisionID + ":" + strconv.Itoa(limit)
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListRecentByDivision(ctx, divisionID, limit)
	})
}

func (r *MatchRepository) ListByTeam(ctx context.Context, divisionID, teamID string) ([]match.Match, error) {
	return loadSlice(ctx, r.cache, matchKeyPrefix+"team:"+divisionID+":"+teamID, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByTeam(ctx, divisionID, teamID)
	})
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return loadByID(ctx, r.cache, matchKeyPrefix+"id:"+matchID, func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, matchID)
	})
}

// ListGoalsByMatches shares goal pointers (Minute) with the cached slice;
// callers treat goals as read-only.
func (r *MatchRepository) ListGoalsByMatches(ctx context.Context, matchIDs []string) ([]match.Goal, error) {
	return loadSlice(ctx, r.cache, goalKeyPrefix+idsKey(matchIDs), func(ctx context.Context) ([]match.Goal, error) {
		return r.next.ListGoalsByMatches(ctx, matchIDs)
	})
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match, goals []match.Goal) (match.Match, error) {
	created, err := r.next.Create(ctx, item, goals)
	if err != nil {
		return match.Match{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match, goals []match.Goal) (match.Match, bool, error) {
	updated, ok, err := r.next.Update(ctx, item, goals)
	if err != nil {
		return match.Match{}, false, err
	}
	r.invalidate(ctx)
	return updated, ok, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, matchID)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx)
	return deleted, nil
}

func (r *MatchRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, matchKeyPrefix, goalKeyPrefix)
}

type HeadlineRepository struct {
	next  headline.Repository
	cache *basecache.Store
}

func NewHeadlineRepository(next headline.Repository, cache *basecache.Store) *HeadlineRepository {
	return &HeadlineRepository{next: next, cache: cache}
}

func (r *HeadlineRepository) ListByDivision(ctx context.Context, divisionID string, limit int) ([]headline.Headline, error) {
	key := headlineKeyPrefix + "division:" + divisionID + ":" + strconv.Itoa(limit)
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]headline.Headline, error) {
		return r.next.ListByDivision(ctx, divisionID, limit)
	})
}

func (r *HeadlineRepository) GetByID(ctx context.Context, headlineID string) (headline.Headline, bool, error) {
	return loadByID(ctx, r.cache, headlineKeyPrefix+"id:"+headlineID, func(ctx context.Context) (headline.Headline, bool, error) {
		return r.next.GetByID(ctx, headlineID)
	})
}

func (r *HeadlineRepository) Create(ctx context.Context, item headline.Headline) (headline.Headline, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return headline.Headline{}, err
	}
	r.cache.DeletePrefix(ctx, headlineKeyPrefix)
	return created, nil
}

func (r *HeadlineRepository) Update(ctx context.Context, item headline.Headline) (headline.Headline, bool, error) {
	updated, ok, err := r.next.Update(ctx, item)
	if err != nil {
		return headline.Headline{}, false, err
	}
	r.cache.DeletePrefix(ctx, headlineKeyPrefix)
	return updated, ok, nil
}

func (r *HeadlineRepository) Delete(ctx context.Context, headlineID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, headlineID)
	if err != nil {
		return false, err
	}
	r.cache.DeletePrefix(ctx, headlineKeyPrefix)
	return deleted, nil
}
