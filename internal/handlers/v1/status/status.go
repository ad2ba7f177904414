package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Version is the reported API version.
const Version = "1.0"

// DirectoryInput is the Huma input for the API directory.
type DirectoryInput struct{}

// DirectoryResponseBody describes the service and its endpoint map.
type DirectoryResponseBody struct {
	Status    string            `json:"status" doc:"Service health indicator"`
	Version   string            `json:"version" doc:"API version"`
	Endpoints map[string]string `json:"endpoints" doc:"Available endpoint groups"`
}

// DirectoryOutput is the Huma output for the API directory.
type DirectoryOutput struct {
	Body DirectoryResponseBody
}

// DirectoryHandler handles GET /, the unauthenticated API directory.
type DirectoryHandler struct{}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler() *DirectoryHandler {
	return &DirectoryHandler{}
}

// Register registers the directory endpoint with the Huma API.
func (h *DirectoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "api-directory",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "API directory",
		Description: "Lists the service's endpoint groups. Requires no authentication.",
		Tags:        []string{"Status"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *DirectoryHandler) handle(ctx context.Context, input *DirectoryInput) (*DirectoryOutput, error) {
	return &DirectoryOutput{
		Body: DirectoryResponseBody{
			Status:  "ok",
			Version: Version,
			Endpoints: map[string]string{
				"auth":         "/auth/",
				"categories":   "/categories/",
				"transactions": "/transactions/",
				"budgets":      "/budgets/",
				"dashboard":    "/dashboard/",
			},
		},
	}, nil
}
