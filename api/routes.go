package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/handlers/v1/authn"
	"github.com/moneta-app/finance-server/internal/handlers/v1/budget"
	"github.com/moneta-app/finance-server/internal/handlers/v1/category"
	"github.com/moneta-app/finance-server/internal/handlers/v1/dashboard"
	"github.com/moneta-app/finance-server/internal/handlers/v1/status"
	"github.com/moneta-app/finance-server/internal/handlers/v1/transaction"
	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	TokenIssuer *auth.TokenIssuer
}

// registerRoutes wires every handler into the API. Auth runs after logging so
// rejected requests still get a completion line.
func (r *Rest) registerRoutes(api huma.API) {
	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.TokenIssuer))

	status.NewDirectoryHandler().Register(api)

	authn.NewRegisterHandler(r.Service.User).Register(api)
	authn.NewLoginHandler(r.Service.Auth).Register(api)
	authn.NewRefreshHandler(r.Service.Auth).Register(api)
	authn.NewLogoutHandler(r.Service.Auth).Register(api)
	authn.NewUserHandler(r.Service.User).Register(api)

	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewInitializeDefaultsHandler(r.Service.Category).Register(api)
	category.NewCategoryDetailHandler(r.Service.Category).Register(api)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewMonthlyTrendsHandler(r.Service.Transaction).Register(api)
	transaction.NewTransactionDetailHandler(r.Service.Transaction).Register(api)

	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewCreateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewSummaryHandler(r.Service.Budget).Register(api)
	budget.NewBudgetDetailHandler(r.Service.Budget).Register(api)

	dashboard.NewDashboardHandler(r.Service.Dashboard).Register(api)
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("finance-server", status.Version))
	r.registerRoutes(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
