package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on these interfaces only.
type ServiceContainer struct {
	Currency    CurrencySvcFacade
	Bank        BankSvcFacade
	Interaction InteractionSvc
}
