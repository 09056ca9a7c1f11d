package services

import (
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/coin_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/platform/config"
)

// Gateways bundles the outbound providers the services talk to.
type Gateways struct {
	AccountResolver  gateways.AccountResolver
	GeoLocator       gateways.GeoLocator
	RemoteProcedures gateways.RemoteProcedures
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw Gateways) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(gw.GeoLocator)

	var bankOpts []BankServiceOption
	if cfg.CacheEnabled() {
		bankOpts = append(bankOpts, WithVerificationCache(repos.VerificationCacheRepo, cfg.VerificationCacheTTL, []byte(cfg.PaystackSecretKey)))
	}
	container.Bank = NewBankService(gw.AccountResolver, bankOpts...)

	container.Interaction = NewInteractionService(gw.RemoteProcedures)

	return container
}
