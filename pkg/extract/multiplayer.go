package extract

import (
	"regexp"
	"strconv"

	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

// Multiplayer describes one multiplayer mode. Players is nil when the
// mode exists but its player count is unknown.
type Multiplayer struct {
	Available  int
	Players    *int
	OnlineOnly int
}

// matchPlayers returns the count captured by the first pattern matching
// any notice. Patterns are tried notice by notice.
func matchPlayers(notices []string, patterns []*regexp.Regexp) (int, bool) {
	for _, n := range notices {
		for _, re := range patterns {
			m := re.FindStringSubmatch(n)
			if m == nil {
				continue
			}
			if v, err := strconv.Atoi(m[1]); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// localMultiplayer checks the storefront notices, then the tracker's
// offline player count, then the aggregator features.
func (r *rules) localMultiplayer(doc *sources.Document) Multiplayer {
	if n, ok := matchPlayers(notices(doc), r.localPlayers); ok {
		return Multiplayer{Available: 1, Players: ptr.To(n)}
	}
	if raw, ok := doc.Lookup(sources.Tracker, pathOfflinePlayers); ok {
		if n, err := resolver.ToInt(raw); err == nil && n > 1 {
			return Multiplayer{Available: 1, Players: ptr.To(n)}
		}
	}
	if r.localRule.matches(doc) {
		return Multiplayer{Available: 1}
	}
	return Multiplayer{Players: ptr.To(0)}
}

// onlineMultiplayer checks the storefront notices, then the tracker's
// online fields. The online-only flag is cleared when the tracker fields
// are unreadable.
func (r *rules) onlineMultiplayer(doc *sources.Document) Multiplayer {
	onlineOnly := flag(r.onlineOnlyRule.matches(doc))

	if n, ok := matchPlayers(notices(doc), r.onlinePlayers); ok {
		return Multiplayer{Available: 1, Players: ptr.To(n), OnlineOnly: onlineOnly}
	}

	players, errPlayers := lookupInt(doc, sources.Tracker, pathOnlinePlayers)
	play, errPlay := lookupInt(doc, sources.Tracker, pathOnlinePlay)
	if errPlayers != nil || errPlay != nil {
		return Multiplayer{Players: ptr.To(0)}
	}

	if players <= 0 && play != 1 {
		return Multiplayer{Players: ptr.To(0), OnlineOnly: onlineOnly}
	}
	m := Multiplayer{Available: 1, OnlineOnly: onlineOnly}
	if players >= 0 {
		m.Players = ptr.To(players)
	}
	return m
}

// lookupInt reads and converts one raw integer.
func lookupInt(doc *sources.Document, id sources.ID, path string) (int, error) {
	raw, ok := doc.Lookup(id, path)
	if !ok {
		return 0, errAbsent
	}
	return resolver.ToInt(raw)
}
