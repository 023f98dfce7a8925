package services

// ServiceContainer groups the services handed to the handler layer.
type ServiceContainer struct {
	JobService         JobService
	JobTypeService     JobTypeService
	ApplicationService ApplicationService
}
