package memcache_fx

import (
	"go.uber.org/fx"
	mem "tripmate/pkg/memcache"
)

var Module = fx.Provide(provideChatSessions)

func provideChatSessions() mem.ChatSessionStore {
	return mem.NewChatSessions()
}
