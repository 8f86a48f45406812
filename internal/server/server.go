package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"time"

	"golang.org/x/exp/maps"

	"github.com/salestrace/salestrace/internal/cache"
	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/filter"
	"github.com/salestrace/salestrace/internal/logger"
	"github.com/salestrace/salestrace/internal/report"
	"github.com/salestrace/salestrace/internal/table"
	"github.com/salestrace/salestrace/internal/transaction"
	"github.com/salestrace/salestrace/internal/util"
)

type Handler struct {
	HTTPHandler http.Handler
	reload      bool
	cache       *cache.Cache
	templates   templates
	logger      *logger.Logger
}

//nolint:revive // We return the private handler struct to allow testing some internal functions
func New(transactionCache *cache.Cache, logger *logger.Logger) *Handler {
	allowEmbedding := os.Getenv("SALESTRACE_ALLOW_EMBEDDING") == "true"

	handler := &Handler{
		reload: os.Getenv("LIVERELOAD") == "true",
		cache:  transactionCache,
		logger: logger,
	}

	mux := &http.ServeMux{}

	parseError := handler.parseTemplates()

	if parseError != nil {
		logger.Fatal("error parsing templates", "error", parseError.Error())
	}

	// Routes
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		handler.dashboardHandler(w, r)
	})

	mux.HandleFunc("GET /transaction/{id}", func(w http.ResponseWriter, r *http.Request) {
		handler.detailHandler(w, r)
	})

	mux.HandleFunc("POST /refresh", func(w http.ResponseWriter, r *http.Request) {
		handler.cache.Invalidate()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	mux.HandleFunc("GET /api/transactions", func(w http.ResponseWriter, r *http.Request) {
		handler.apiTransactionsHandler(w, r)
	})

	// wrap entire mux with middlewares
	wrappedHandler := loggingMiddleware(logger, mux)
	wrappedHandler = requestIDMiddleware(wrappedHandler)
	wrappedHandler = liveReloadMiddleware(handler, wrappedHandler)
	if !allowEmbedding {
		wrappedHandler = xFrameDenyHeaderMiddleware(wrappedHandler)
	}

	handler.HTTPHandler = wrappedHandler

	return handler
}

type dateTab struct {
	Label  string
	Href   string
	Active bool
}

type salesTypeOption struct {
	Value    transaction.SalesType
	Label    string
	Href     string
	Selected bool
}

type salesTypeTotal struct {
	Label          string
	TotalFormatted string
}

type dashboardData struct {
	Summary          report.Summary
	Filters          filter.Filters
	Page             table.Page
	Sort             *table.SortOptions
	DateTabs         []dateTab
	SalesTypeOptions []salesTypeOption
	SalesTypeTotals  []salesTypeTotal
	Detail           *transaction.Formatted
	SalesTypesParam  string
	SortParam        string
	PrevHref         string
	NextHref         string
	Error            error
}

func (h *Handler) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	store := filter.NewStore(query)
	filters := store.Filters()

	sortOpts, page, err := table.ParseViewOptions(query)
	if err != nil {
		h.logger.Warn("invalid view options, using defaults", "error", err.Error())
		sortOpts = table.DefaultSortOptions()
		page = 0
	}

	raw, err := h.cache.Transactions(r.Context())
	if err != nil {
		h.logger.Error("failed to load transactions", "error", err.Error())
		w.WriteHeader(http.StatusBadGateway)
		h.templates.Render(w, "pages/dashboard.html", dashboardData{Error: err})
		return
	}

	now := time.Now()
	formatted := transaction.Format(raw)
	summary := report.Generate(formatted, filters.Date, now)
	view := table.ViewAt(formatted, filters, sortOpts, page, table.DefaultPageSize, now)

	data := dashboardData{
		Summary:          summary,
		Filters:          filters,
		Page:             view,
		Sort:             sortOpts,
		DateTabs:         dateTabs(query, filters),
		SalesTypeOptions: salesTypeOptions(query, filters),
		SalesTypeTotals:  salesTypeTotals(summary),
		SalesTypesParam:  store.Values().Get("salesTypes"),
		PrevHref:         pageHref(query, sortOpts, view.PageIndex-1),
		NextHref:         pageHref(query, sortOpts, view.PageIndex+1),
	}

	if sortOpts.String() != table.DefaultSortOptions().String() {
		data.SortParam = sortOpts.String()
	}

	if id := query.Get("id"); id != "" {
		if detail, ok := transaction.Lookup(formatted, id); ok {
			data.Detail = &detail
		}
	}

	h.templates.Render(w, "pages/dashboard.html", data)
}

func (h *Handler) detailHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := h.cache.Transactions(r.Context())
	if err != nil {
		h.logger.Error("failed to load transactions", "error", err.Error())
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	detail, ok := transaction.Lookup(transaction.Format(raw), r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.templates.Render(w, "partials/detail.html", detail)
}

type apiResponse struct {
	Data           []transaction.Formatted `json:"data"`
	Total          int64                   `json:"total"`
	TotalFormatted string                  `json:"totalFormatted"`
}

func (h *Handler) apiTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	store := filter.NewStore(query)
	filters := store.Filters()

	raw, err := h.cache.Transactions(r.Context())
	if err != nil {
		h.logger.Error("failed to load transactions", "error", err.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	now := time.Now()
	formatted := transaction.Format(raw)
	total := report.TotalAt(formatted, filters.Date, now)

	rows := make([]transaction.Formatted, 0, len(formatted))
	for _, row := range formatted {
		if filters.MatchAt(row, now) {
			rows = append(rows, row)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(apiResponse{
		Data:           rows,
		Total:          total,
		TotalFormatted: util.FormatMoney(total),
	})
	if err != nil {
		h.logger.Error("failed to encode transactions response", "error", err.Error())
	}
}

// dateTabs builds one link per date mode by re-serializing a fresh store
// snapshot with that mode applied.
func dateTabs(query url.Values, filters filter.Filters) []dateTab {
	tabs := make([]dateTab, 0, len(datefilter.Modes))

	for _, mode := range datefilter.Modes {
		store := filter.NewStore(query)
		values := store.SetDate(mode)

		tabs = append(tabs, dateTab{
			Label:  datefilter.Label(mode),
			Href:   "/?" + values.Encode(),
			Active: filters.Date == mode,
		})
	}

	return tabs
}

func salesTypeOptions(query url.Values, filters filter.Filters) []salesTypeOption {
	selectable := []transaction.SalesType{
		transaction.SalesTypePaymentLink,
		transaction.SalesTypeTerminal,
		transaction.SalesTypeAll,
	}

	options := make([]salesTypeOption, 0, len(selectable))

	for _, salesType := range selectable {
		store := filter.NewStore(query)
		values := store.SetSalesTypes(toggleSalesType(filters.SalesTypes, salesType))

		options = append(options, salesTypeOption{
			Value:    salesType,
			Label:    transaction.SalesTypeLabels(salesType).Filter,
			Href:     "/?" + values.Encode(),
			Selected: selectedSalesType(filters.SalesTypes, salesType),
		})
	}

	return options
}

// toggleSalesType flips one sales type in the selection. Selecting the
// wildcard clears the restriction.
func toggleSalesType(current []transaction.SalesType, salesType transaction.SalesType) []transaction.SalesType {
	if salesType == transaction.SalesTypeAll {
		return nil
	}

	next := make([]transaction.SalesType, 0, len(current)+1)
	removed := false
	for _, s := range current {
		if s == salesType {
			removed = true
			continue
		}
		next = append(next, s)
	}

	if !removed {
		next = append(next, salesType)
	}

	return next
}

func selectedSalesType(current []transaction.SalesType, salesType transaction.SalesType) bool {
	if salesType == transaction.SalesTypeAll {
		return len(current) == 0
	}

	for _, s := range current {
		if s == salesType {
			return true
		}
	}

	return false
}

func salesTypeTotals(summary report.Summary) []salesTypeTotal {
	salesTypes := maps.Keys(summary.BySalesType)
	sort.Slice(salesTypes, func(i, j int) bool {
		return salesTypes[i] < salesTypes[j]
	})

	totals := make([]salesTypeTotal, 0, len(salesTypes))
	for _, salesType := range salesTypes {
		totals = append(totals, salesTypeTotal{
			Label:          transaction.SalesTypeLabels(salesType).Modal,
			TotalFormatted: util.FormatMoney(summary.BySalesType[salesType]),
		})
	}

	return totals
}

func pageHref(query url.Values, sortOpts *table.SortOptions, page int) string {
	if page < 0 {
		page = 0
	}

	values := filter.NewStore(query).Values()

	if sortOpts != nil && sortOpts.String() != table.DefaultSortOptions().String() {
		values.Set("sort", sortOpts.String())
	}

	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}

	return "/?" + values.Encode()
}
