package services

import (
	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	rateSource portsrepo.RateSource,
	gate portssvc.CreationGate,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Conversion first since the transaction service depends on it
	container.Conversion = NewConversionService(rateSource)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Conversion,
		gate,
		cfg.BaseCurrency,
	)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.ConversionSvcFacade  = (*ConversionService)(nil)
)
