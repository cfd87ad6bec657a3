package services

import (
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	portssvc "github.com/kbeautyshop/storefront_backend/internal/core/ports/services"
)

// Container bundles the constructed services for route registration.
type Container struct {
	Cart     portssvc.CartSvcFacade
	Catalog  portssvc.CatalogSvcFacade
	User     portssvc.UserSvcFacade
	Checkout portssvc.CheckoutSvcFacade
}

// Repositories bundles the storage adapters the services are built on.
type Repositories struct {
	CartSnapshots portsrepo.CartSnapshotRepositoryFacade
	Users         portsrepo.UserRepositoryFacade
	Orders        portsrepo.OrderRepositoryFacade
	Catalog       portsrepo.ProductCatalogReader
}

// NewContainer wires all services from their repositories.
func NewContainer(repos Repositories) *Container {
	return &Container{
		Cart:     NewCartService(repos.CartSnapshots),
		Catalog:  NewCatalogService(repos.Catalog),
		User:     NewUserService(repos.Users),
		Checkout: NewCheckoutService(repos.CartSnapshots, repos.Orders),
	}
}
