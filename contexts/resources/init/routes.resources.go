package init

// apiBasePath is the prefix of restapi.Container.APIRouter.
const apiBasePath = "/api"

func registerResourcesRoutes(rc *ResourcesContext) {
	rc.globalContainer.WebRouter.GET("/health", rc.healthController.Health())
	rc.globalContainer.WebRouter.GET("/openapi.json", rc.openAPIController.Document())

	rc.usersController.RegisterRoutes(rc.globalContainer.APIRouter)
	rc.carsController.RegisterRoutes(rc.globalContainer.APIRouter)
	rc.productsController.RegisterRoutes(rc.globalContainer.APIRouter)
	rc.ordersController.RegisterRoutes(rc.globalContainer.APIRouter)
}
