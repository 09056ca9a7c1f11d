package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A nil VerificationCacheRepo disables verification caching.
type RepositoryProvider struct {
	VerificationCacheRepo VerificationCacheRepositoryFacade
}
