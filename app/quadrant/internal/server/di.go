package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/data"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/insight"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/render"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/service"
)

// ProviderSet 是看板服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewTableRepo,

	// UseCase providers
	biz.NewQuadrantUseCase,

	// Infrastructure providers
	render.NewRenderer,
	insight.NewInterpreter,

	// Service providers
	service.NewQuadrantService,
)
