package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	articleHandler  articleHandler
	categoryHandler categoryHandler
	adminHandler    adminHandler
	feedHandler     feedHandler
	metaHandler     metaHandler
}
