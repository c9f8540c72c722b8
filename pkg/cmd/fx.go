package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(configCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(layoutCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(resolveCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
