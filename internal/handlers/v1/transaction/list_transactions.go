package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Date
// bounds accept both min_date/max_date and start_date/end_date spellings.
type ListTransactionsInput struct {
	Category  string `query:"category" doc:"Filter by category UUID"`
	Type      string `query:"type" doc:"Filter by transaction type (income or expense)"`
	MinDate   string `query:"min_date" doc:"Earliest date, inclusive (YYYY-MM-DD)"`
	MaxDate   string `query:"max_date" doc:"Latest date, inclusive (YYYY-MM-DD)"`
	StartDate string `query:"start_date" doc:"Alias for min_date"`
	EndDate   string `query:"end_date" doc:"Alias for max_date"`
	MinAmount string `query:"min_amount" doc:"Minimum amount, inclusive"`
	MaxAmount string `query:"max_amount" doc:"Maximum amount, inclusive"`
	Search    string `query:"search" doc:"Case-insensitive match on description or category name"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Results []Transaction `json:"results" doc:"The matching transactions, newest first"`
	Message string        `json:"message,omitempty" doc:"Set when no transactions match"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter *service.TransactionFilter) ([]*service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions, optionally filtered by category, type, date range, amount range, or a text search.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput converts the query parameters into a service
// filter. Nil means no filtering at all.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	filter := &service.TransactionFilter{Search: input.Search}
	empty := input.Search == ""

	if input.Category != "" {
		categoryID, err := uuid.FromString(input.Category)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid category filter")
		}
		filter.CategoryID = &categoryID
		empty = false
	}
	if input.Type != "" {
		if input.Type != "income" && input.Type != "expense" {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type filter, expected income or expense")
		}
		transactionType := input.Type
		filter.Type = &transactionType
		empty = false
	}

	minDate := input.MinDate
	if minDate == "" {
		minDate = input.StartDate
	}
	if minDate != "" {
		parsed, err := parseDate(minDate, "min_date")
		if err != nil {
			return nil, err
		}
		filter.MinDate = &parsed
		empty = false
	}
	maxDate := input.MaxDate
	if maxDate == "" {
		maxDate = input.EndDate
	}
	if maxDate != "" {
		parsed, err := parseDate(maxDate, "max_date")
		if err != nil {
			return nil, err
		}
		filter.MaxDate = &parsed
		empty = false
	}

	if input.MinAmount != "" {
		amount, err := decimal.NewFromString(input.MinAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid min_amount")
		}
		filter.MinAmount = &amount
		empty = false
	}
	if input.MaxAmount != "" {
		amount, err := decimal.NewFromString(input.MaxAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid max_amount")
		}
		filter.MaxAmount = &amount
		empty = false
	}

	if empty {
		return nil, nil
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, userID, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{Results: make([]Transaction, len(transactions))}
	for i, tx := range transactions {
		resp.Results[i] = fromService(tx)
	}
	if len(transactions) == 0 {
		resp.Message = "No transactions found."
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
