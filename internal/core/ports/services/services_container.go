package services

// ServiceContainer holds the service facades handed to the HTTP layer.
type ServiceContainer struct {
	User         UserSvcFacade
	Project      ProjectSvcFacade
	Investment   InvestmentSvcFacade
	Notification NotificationSvcFacade
}
