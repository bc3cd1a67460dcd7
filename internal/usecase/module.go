package usecase

import "go.uber.org/fx"

// Module provides validation, pagination and user use cases to the fx container.
var Module = fx.Module("usecase",
	fx.Provide(
		NewRules,
		NewValidator,
		NewPaginator,
		NewUserUseCase,
	),
)
