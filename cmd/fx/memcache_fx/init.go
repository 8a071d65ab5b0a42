package memcache_fx

import (
	"go.uber.org/fx"

	mem "dealflow/pkg/memcache"
)

var Module = fx.Provide(provideResetTokens)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
