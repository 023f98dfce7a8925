package handlers

// AppHandlers groups every handler the router mounts.
type AppHandlers struct {
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	AdminHandler       *AdminHandler
	FunctionHandler    *FunctionHandler
}
