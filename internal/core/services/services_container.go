package services

import (
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
)

// NewServiceContainer wires the services with their repository dependencies.
// Notification is built first because the ledger services fan out through it.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.UserRepo, container.Notification)
	container.Investment = NewInvestmentService(
		repos.InvestmentRepo,
		repos.ProjectRepo,
		repos.UserRepo,
		container.Notification,
	)

	return container
}
