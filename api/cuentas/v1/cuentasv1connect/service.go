// Package cuentasv1connect wires the cuentas.v1.FinanceService messages to
// connect handlers and clients over a JSON codec.
package cuentasv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
)

// FinanceServiceName is the fully-qualified name of the FinanceService service.
const FinanceServiceName = "cuentas.v1.FinanceService"

// These constants are the fully-qualified names of the RPCs defined in FinanceService, in the
// form "/package.Service/Method". They are also the request paths.
const (
	// FinanceServiceParseEntryProcedure is the fully-qualified name of the FinanceService's ParseEntry RPC.
	FinanceServiceParseEntryProcedure = "/cuentas.v1.FinanceService/ParseEntry"
	// FinanceServiceCreateEntryProcedure is the fully-qualified name of the FinanceService's CreateEntry RPC.
	FinanceServiceCreateEntryProcedure = "/cuentas.v1.FinanceService/CreateEntry"
	// FinanceServiceCreateMovementProcedure is the fully-qualified name of the FinanceService's CreateMovement RPC.
	FinanceServiceCreateMovementProcedure = "/cuentas.v1.FinanceService/CreateMovement"
	// FinanceServiceGetMovementProcedure is the fully-qualified name of the FinanceService's GetMovement RPC.
	FinanceServiceGetMovementProcedure = "/cuentas.v1.FinanceService/GetMovement"
	// FinanceServiceUpdateMovementProcedure is the fully-qualified name of the FinanceService's UpdateMovement RPC.
	FinanceServiceUpdateMovementProcedure = "/cuentas.v1.FinanceService/UpdateMovement"
	// FinanceServiceDeleteMovementProcedure is the fully-qualified name of the FinanceService's DeleteMovement RPC.
	FinanceServiceDeleteMovementProcedure = "/cuentas.v1.FinanceService/DeleteMovement"
	// FinanceServiceListMovementsProcedure is the fully-qualified name of the FinanceService's ListMovements RPC.
	FinanceServiceListMovementsProcedure = "/cuentas.v1.FinanceService/ListMovements"
	// FinanceServiceWatchMovementsProcedure is the fully-qualified name of the FinanceService's WatchMovements RPC.
	FinanceServiceWatchMovementsProcedure = "/cuentas.v1.FinanceService/WatchMovements"
	// FinanceServiceCreateSavingProcedure is the fully-qualified name of the FinanceService's CreateSaving RPC.
	FinanceServiceCreateSavingProcedure = "/cuentas.v1.FinanceService/CreateSaving"
	// FinanceServiceDeleteSavingProcedure is the fully-qualified name of the FinanceService's DeleteSaving RPC.
	FinanceServiceDeleteSavingProcedure = "/cuentas.v1.FinanceService/DeleteSaving"
	// FinanceServiceListSavingsProcedure is the fully-qualified name of the FinanceService's ListSavings RPC.
	FinanceServiceListSavingsProcedure = "/cuentas.v1.FinanceService/ListSavings"
	// FinanceServiceGetSavingsBalanceProcedure is the fully-qualified name of the FinanceService's GetSavingsBalance RPC.
	FinanceServiceGetSavingsBalanceProcedure = "/cuentas.v1.FinanceService/GetSavingsBalance"
	// FinanceServiceCreatePayableProcedure is the fully-qualified name of the FinanceService's CreatePayable RPC.
	FinanceServiceCreatePayableProcedure = "/cuentas.v1.FinanceService/CreatePayable"
	// FinanceServiceListPayablesProcedure is the fully-qualified name of the FinanceService's ListPayables RPC.
	FinanceServiceListPayablesProcedure = "/cuentas.v1.FinanceService/ListPayables"
	// FinanceServiceDeletePayableProcedure is the fully-qualified name of the FinanceService's DeletePayable RPC.
	FinanceServiceDeletePayableProcedure = "/cuentas.v1.FinanceService/DeletePayable"
	// FinanceServiceMarkPayablePaidProcedure is the fully-qualified name of the FinanceService's MarkPayablePaid RPC.
	FinanceServiceMarkPayablePaidProcedure = "/cuentas.v1.FinanceService/MarkPayablePaid"
	// FinanceServiceCreateReceivableProcedure is the fully-qualified name of the FinanceService's CreateReceivable RPC.
	FinanceServiceCreateReceivableProcedure = "/cuentas.v1.FinanceService/CreateReceivable"
	// FinanceServiceListReceivablesProcedure is the fully-qualified name of the FinanceService's ListReceivables RPC.
	FinanceServiceListReceivablesProcedure = "/cuentas.v1.FinanceService/ListReceivables"
	// FinanceServiceDeleteReceivableProcedure is the fully-qualified name of the FinanceService's DeleteReceivable RPC.
	FinanceServiceDeleteReceivableProcedure = "/cuentas.v1.FinanceService/DeleteReceivable"
	// FinanceServiceMarkReceivableCollectedProcedure is the fully-qualified name of the FinanceService's MarkReceivableCollected RPC.
	FinanceServiceMarkReceivableCollectedProcedure = "/cuentas.v1.FinanceService/MarkReceivableCollected"
	// FinanceServiceCreateCardProcedure is the fully-qualified name of the FinanceService's CreateCard RPC.
	FinanceServiceCreateCardProcedure = "/cuentas.v1.FinanceService/CreateCard"
	// FinanceServiceUpdateCardProcedure is the fully-qualified name of the FinanceService's UpdateCard RPC.
	FinanceServiceUpdateCardProcedure = "/cuentas.v1.FinanceService/UpdateCard"
	// FinanceServiceListCardsProcedure is the fully-qualified name of the FinanceService's ListCards RPC.
	FinanceServiceListCardsProcedure = "/cuentas.v1.FinanceService/ListCards"
	// FinanceServiceDeleteCardProcedure is the fully-qualified name of the FinanceService's DeleteCard RPC.
	FinanceServiceDeleteCardProcedure = "/cuentas.v1.FinanceService/DeleteCard"
	// FinanceServiceComputeCycleProcedure is the fully-qualified name of the FinanceService's ComputeCycle RPC.
	FinanceServiceComputeCycleProcedure = "/cuentas.v1.FinanceService/ComputeCycle"
	// FinanceServiceCreateCardPurchaseProcedure is the fully-qualified name of the FinanceService's CreateCardPurchase RPC.
	FinanceServiceCreateCardPurchaseProcedure = "/cuentas.v1.FinanceService/CreateCardPurchase"
	// FinanceServiceListCardPurchasesProcedure is the fully-qualified name of the FinanceService's ListCardPurchases RPC.
	FinanceServiceListCardPurchasesProcedure = "/cuentas.v1.FinanceService/ListCardPurchases"
	// FinanceServiceDeleteCardPurchaseProcedure is the fully-qualified name of the FinanceService's DeleteCardPurchase RPC.
	FinanceServiceDeleteCardPurchaseProcedure = "/cuentas.v1.FinanceService/DeleteCardPurchase"
	// FinanceServiceListPendingCyclesProcedure is the fully-qualified name of the FinanceService's ListPendingCycles RPC.
	FinanceServiceListPendingCyclesProcedure = "/cuentas.v1.FinanceService/ListPendingCycles"
	// FinanceServiceLiquidateCycleProcedure is the fully-qualified name of the FinanceService's LiquidateCycle RPC.
	FinanceServiceLiquidateCycleProcedure = "/cuentas.v1.FinanceService/LiquidateCycle"
	// FinanceServiceGetMonthlySummaryProcedure is the fully-qualified name of the FinanceService's GetMonthlySummary RPC.
	FinanceServiceGetMonthlySummaryProcedure = "/cuentas.v1.FinanceService/GetMonthlySummary"
	// FinanceServiceGetCategoryBreakdownProcedure is the fully-qualified name of the FinanceService's GetCategoryBreakdown RPC.
	FinanceServiceGetCategoryBreakdownProcedure = "/cuentas.v1.FinanceService/GetCategoryBreakdown"
	// FinanceServiceGetCalendarHeatmapProcedure is the fully-qualified name of the FinanceService's GetCalendarHeatmap RPC.
	FinanceServiceGetCalendarHeatmapProcedure = "/cuentas.v1.FinanceService/GetCalendarHeatmap"
	// FinanceServiceQueryMovementsProcedure is the fully-qualified name of the FinanceService's QueryMovements RPC.
	FinanceServiceQueryMovementsProcedure = "/cuentas.v1.FinanceService/QueryMovements"
	// FinanceServiceRegisterPushTokenProcedure is the fully-qualified name of the FinanceService's RegisterPushToken RPC.
	FinanceServiceRegisterPushTokenProcedure = "/cuentas.v1.FinanceService/RegisterPushToken"
	// FinanceServiceUnregisterPushTokenProcedure is the fully-qualified name of the FinanceService's UnregisterPushToken RPC.
	FinanceServiceUnregisterPushTokenProcedure = "/cuentas.v1.FinanceService/UnregisterPushToken"
	// FinanceServiceUpdateNotificationPreferencesProcedure is the fully-qualified name of the FinanceService's UpdateNotificationPreferences RPC.
	FinanceServiceUpdateNotificationPreferencesProcedure = "/cuentas.v1.FinanceService/UpdateNotificationPreferences"
	// FinanceServiceSendDueRemindersProcedure is the fully-qualified name of the FinanceService's SendDueReminders RPC.
	FinanceServiceSendDueRemindersProcedure = "/cuentas.v1.FinanceService/SendDueReminders"
	// FinanceServiceExportMovementsProcedure is the fully-qualified name of the FinanceService's ExportMovements RPC.
	FinanceServiceExportMovementsProcedure = "/cuentas.v1.FinanceService/ExportMovements"
	// FinanceServiceImportStatementProcedure is the fully-qualified name of the FinanceService's ImportStatement RPC.
	FinanceServiceImportStatementProcedure = "/cuentas.v1.FinanceService/ImportStatement"
)

// FinanceServiceHandler is implemented by the service.
type FinanceServiceHandler interface {
	ParseEntry(context.Context, *connect.Request[v1.ParseEntryRequest]) (*connect.Response[v1.ParseEntryResponse], error)
	CreateEntry(context.Context, *connect.Request[v1.CreateEntryRequest]) (*connect.Response[v1.CreateEntryResponse], error)
	CreateMovement(context.Context, *connect.Request[v1.CreateMovementRequest]) (*connect.Response[v1.CreateMovementResponse], error)
	GetMovement(context.Context, *connect.Request[v1.GetMovementRequest]) (*connect.Response[v1.GetMovementResponse], error)
	UpdateMovement(context.Context, *connect.Request[v1.UpdateMovementRequest]) (*connect.Response[v1.UpdateMovementResponse], error)
	DeleteMovement(context.Context, *connect.Request[v1.DeleteMovementRequest]) (*connect.Response[v1.DeleteMovementResponse], error)
	ListMovements(context.Context, *connect.Request[v1.ListMovementsRequest]) (*connect.Response[v1.ListMovementsResponse], error)
	WatchMovements(context.Context, *connect.Request[v1.WatchMovementsRequest], *connect.ServerStream[v1.WatchMovementsResponse]) error
	CreateSaving(context.Context, *connect.Request[v1.CreateSavingRequest]) (*connect.Response[v1.CreateSavingResponse], error)
	DeleteSaving(context.Context, *connect.Request[v1.DeleteSavingRequest]) (*connect.Response[v1.DeleteSavingResponse], error)
	ListSavings(context.Context, *connect.Request[v1.ListSavingsRequest]) (*connect.Response[v1.ListSavingsResponse], error)
	GetSavingsBalance(context.Context, *connect.Request[v1.GetSavingsBalanceRequest]) (*connect.Response[v1.GetSavingsBalanceResponse], error)
	CreatePayable(context.Context, *connect.Request[v1.CreatePayableRequest]) (*connect.Response[v1.CreatePayableResponse], error)
	ListPayables(context.Context, *connect.Request[v1.ListPayablesRequest]) (*connect.Response[v1.ListPayablesResponse], error)
	DeletePayable(context.Context, *connect.Request[v1.DeletePayableRequest]) (*connect.Response[v1.DeletePayableResponse], error)
	MarkPayablePaid(context.Context, *connect.Request[v1.MarkPayablePaidRequest]) (*connect.Response[v1.MarkPayablePaidResponse], error)
	CreateReceivable(context.Context, *connect.Request[v1.CreateReceivableRequest]) (*connect.Response[v1.CreateReceivableResponse], error)
	ListReceivables(context.Context, *connect.Request[v1.ListReceivablesRequest]) (*connect.Response[v1.ListReceivablesResponse], error)
	DeleteReceivable(context.Context, *connect.Request[v1.DeleteReceivableRequest]) (*connect.Response[v1.DeleteReceivableResponse], error)
	MarkReceivableCollected(context.Context, *connect.Request[v1.MarkReceivableCollectedRequest]) (*connect.Response[v1.MarkReceivableCollectedResponse], error)
	CreateCard(context.Context, *connect.Request[v1.CreateCardRequest]) (*connect.Response[v1.CreateCardResponse], error)
	UpdateCard(context.Context, *connect.Request[v1.UpdateCardRequest]) (*connect.Response[v1.UpdateCardResponse], error)
	ListCards(context.Context, *connect.Request[v1.ListCardsRequest]) (*connect.Response[v1.ListCardsResponse], error)
	DeleteCard(context.Context, *connect.Request[v1.DeleteCardRequest]) (*connect.Response[v1.DeleteCardResponse], error)
	ComputeCycle(context.Context, *connect.Request[v1.ComputeCycleRequest]) (*connect.Response[v1.ComputeCycleResponse], error)
	CreateCardPurchase(context.Context, *connect.Request[v1.CreateCardPurchaseRequest]) (*connect.Response[v1.CreateCardPurchaseResponse], error)
	ListCardPurchases(context.Context, *connect.Request[v1.ListCardPurchasesRequest]) (*connect.Response[v1.ListCardPurchasesResponse], error)
	DeleteCardPurchase(context.Context, *connect.Request[v1.DeleteCardPurchaseRequest]) (*connect.Response[v1.DeleteCardPurchaseResponse], error)
	ListPendingCycles(context.Context, *connect.Request[v1.ListPendingCyclesRequest]) (*connect.Response[v1.ListPendingCyclesResponse], error)
	LiquidateCycle(context.Context, *connect.Request[v1.LiquidateCycleRequest]) (*connect.Response[v1.LiquidateCycleResponse], error)
	GetMonthlySummary(context.Context, *connect.Request[v1.GetMonthlySummaryRequest]) (*connect.Response[v1.GetMonthlySummaryResponse], error)
	GetCategoryBreakdown(context.Context, *connect.Request[v1.GetCategoryBreakdownRequest]) (*connect.Response[v1.GetCategoryBreakdownResponse], error)
	GetCalendarHeatmap(context.Context, *connect.Request[v1.GetCalendarHeatmapRequest]) (*connect.Response[v1.GetCalendarHeatmapResponse], error)
	QueryMovements(context.Context, *connect.Request[v1.QueryMovementsRequest]) (*connect.Response[v1.QueryMovementsResponse], error)
	RegisterPushToken(context.Context, *connect.Request[v1.RegisterPushTokenRequest]) (*connect.Response[v1.RegisterPushTokenResponse], error)
	UnregisterPushToken(context.Context, *connect.Request[v1.UnregisterPushTokenRequest]) (*connect.Response[v1.UnregisterPushTokenResponse], error)
	UpdateNotificationPreferences(context.Context, *connect.Request[v1.UpdateNotificationPreferencesRequest]) (*connect.Response[v1.UpdateNotificationPreferencesResponse], error)
	SendDueReminders(context.Context, *connect.Request[v1.SendDueRemindersRequest]) (*connect.Response[v1.SendDueRemindersResponse], error)
	ExportMovements(context.Context, *connect.Request[v1.ExportMovementsRequest]) (*connect.Response[v1.ExportMovementsResponse], error)
	ImportStatement(context.Context, *connect.Request[v1.ImportStatementRequest]) (*connect.Response[v1.ImportStatementResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself. The JSON codec is always
// registered; opts may add interceptors.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	handlers := map[string]http.Handler{
		FinanceServiceParseEntryProcedure:                    connect.NewUnaryHandler(FinanceServiceParseEntryProcedure, svc.ParseEntry, opts...),
		FinanceServiceCreateEntryProcedure:                   connect.NewUnaryHandler(FinanceServiceCreateEntryProcedure, svc.CreateEntry, opts...),
		FinanceServiceCreateMovementProcedure:                connect.NewUnaryHandler(FinanceServiceCreateMovementProcedure, svc.CreateMovement, opts...),
		FinanceServiceGetMovementProcedure:                   connect.NewUnaryHandler(FinanceServiceGetMovementProcedure, svc.GetMovement, opts...),
		FinanceServiceUpdateMovementProcedure:                connect.NewUnaryHandler(FinanceServiceUpdateMovementProcedure, svc.UpdateMovement, opts...),
		FinanceServiceDeleteMovementProcedure:                connect.NewUnaryHandler(FinanceServiceDeleteMovementProcedure, svc.DeleteMovement, opts...),
		FinanceServiceListMovementsProcedure:                 connect.NewUnaryHandler(FinanceServiceListMovementsProcedure, svc.ListMovements, opts...),
		FinanceServiceWatchMovementsProcedure:                connect.NewServerStreamHandler(FinanceServiceWatchMovementsProcedure, svc.WatchMovements, opts...),
		FinanceServiceCreateSavingProcedure:                  connect.NewUnaryHandler(FinanceServiceCreateSavingProcedure, svc.CreateSaving, opts...),
		FinanceServiceDeleteSavingProcedure:                  connect.NewUnaryHandler(FinanceServiceDeleteSavingProcedure, svc.DeleteSaving, opts...),
		FinanceServiceListSavingsProcedure:                   connect.NewUnaryHandler(FinanceServiceListSavingsProcedure, svc.ListSavings, opts...),
		FinanceServiceGetSavingsBalanceProcedure:             connect.NewUnaryHandler(FinanceServiceGetSavingsBalanceProcedure, svc.GetSavingsBalance, opts...),
		FinanceServiceCreatePayableProcedure:                 connect.NewUnaryHandler(FinanceServiceCreatePayableProcedure, svc.CreatePayable, opts...),
		FinanceServiceListPayablesProcedure:                  connect.NewUnaryHandler(FinanceServiceListPayablesProcedure, svc.ListPayables, opts...),
		FinanceServiceDeletePayableProcedure:                 connect.NewUnaryHandler(FinanceServiceDeletePayableProcedure, svc.DeletePayable, opts...),
		FinanceServiceMarkPayablePaidProcedure:               connect.NewUnaryHandler(FinanceServiceMarkPayablePaidProcedure, svc.MarkPayablePaid, opts...),
		FinanceServiceCreateReceivableProcedure:              connect.NewUnaryHandler(FinanceServiceCreateReceivableProcedure, svc.CreateReceivable, opts...),
		FinanceServiceListReceivablesProcedure:               connect.NewUnaryHandler(FinanceServiceListReceivablesProcedure, svc.ListReceivables, opts...),
		FinanceServiceDeleteReceivableProcedure:              connect.NewUnaryHandler(FinanceServiceDeleteReceivableProcedure, svc.DeleteReceivable, opts...),
		FinanceServiceMarkReceivableCollectedProcedure:       connect.NewUnaryHandler(FinanceServiceMarkReceivableCollectedProcedure, svc.MarkReceivableCollected, opts...),
		FinanceServiceCreateCardProcedure:                    connect.NewUnaryHandler(FinanceServiceCreateCardProcedure, svc.CreateCard, opts...),
		FinanceServiceUpdateCardProcedure:                    connect.NewUnaryHandler(FinanceServiceUpdateCardProcedure, svc.UpdateCard, opts...),
		FinanceServiceListCardsProcedure:                     connect.NewUnaryHandler(FinanceServiceListCardsProcedure, svc.ListCards, opts...),
		FinanceServiceDeleteCardProcedure:                    connect.NewUnaryHandler(FinanceServiceDeleteCardProcedure, svc.DeleteCard, opts...),
		FinanceServiceComputeCycleProcedure:                  connect.NewUnaryHandler(FinanceServiceComputeCycleProcedure, svc.ComputeCycle, opts...),
		FinanceServiceCreateCardPurchaseProcedure:            connect.NewUnaryHandler(FinanceServiceCreateCardPurchaseProcedure, svc.CreateCardPurchase, opts...),
		FinanceServiceListCardPurchasesProcedure:             connect.NewUnaryHandler(FinanceServiceListCardPurchasesProcedure, svc.ListCardPurchases, opts...),
		FinanceServiceDeleteCardPurchaseProcedure:            connect.NewUnaryHandler(FinanceServiceDeleteCardPurchaseProcedure, svc.DeleteCardPurchase, opts...),
		FinanceServiceListPendingCyclesProcedure:             connect.NewUnaryHandler(FinanceServiceListPendingCyclesProcedure, svc.ListPendingCycles, opts...),
		FinanceServiceLiquidateCycleProcedure:                connect.NewUnaryHandler(FinanceServiceLiquidateCycleProcedure, svc.LiquidateCycle, opts...),
		FinanceServiceGetMonthlySummaryProcedure:             connect.NewUnaryHandler(FinanceServiceGetMonthlySummaryProcedure, svc.GetMonthlySummary, opts...),
		FinanceServiceGetCategoryBreakdownProcedure:          connect.NewUnaryHandler(FinanceServiceGetCategoryBreakdownProcedure, svc.GetCategoryBreakdown, opts...),
		FinanceServiceGetCalendarHeatmapProcedure:            connect.NewUnaryHandler(FinanceServiceGetCalendarHeatmapProcedure, svc.GetCalendarHeatmap, opts...),
		FinanceServiceQueryMovementsProcedure:                connect.NewUnaryHandler(FinanceServiceQueryMovementsProcedure, svc.QueryMovements, opts...),
		FinanceServiceRegisterPushTokenProcedure:             connect.NewUnaryHandler(FinanceServiceRegisterPushTokenProcedure, svc.RegisterPushToken, opts...),
		FinanceServiceUnregisterPushTokenProcedure:           connect.NewUnaryHandler(FinanceServiceUnregisterPushTokenProcedure, svc.UnregisterPushToken, opts...),
		FinanceServiceUpdateNotificationPreferencesProcedure: connect.NewUnaryHandler(FinanceServiceUpdateNotificationPreferencesProcedure, svc.UpdateNotificationPreferences, opts...),
		FinanceServiceSendDueRemindersProcedure:              connect.NewUnaryHandler(FinanceServiceSendDueRemindersProcedure, svc.SendDueReminders, opts...),
		FinanceServiceExportMovementsProcedure:               connect.NewUnaryHandler(FinanceServiceExportMovementsProcedure, svc.ExportMovements, opts...),
		FinanceServiceImportStatementProcedure:               connect.NewUnaryHandler(FinanceServiceImportStatementProcedure, svc.ImportStatement, opts...),
	}
	return "/" + FinanceServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// FinanceServiceClient is a client for the cuentas.v1.FinanceService service.
type FinanceServiceClient struct {
	parseEntry                    *connect.Client[v1.ParseEntryRequest, v1.ParseEntryResponse]
	createEntry                   *connect.Client[v1.CreateEntryRequest, v1.CreateEntryResponse]
	createMovement                *connect.Client[v1.CreateMovementRequest, v1.CreateMovementResponse]
	getMovement                   *connect.Client[v1.GetMovementRequest, v1.GetMovementResponse]
	updateMovement                *connect.Client[v1.UpdateMovementRequest, v1.UpdateMovementResponse]
	deleteMovement                *connect.Client[v1.DeleteMovementRequest, v1.DeleteMovementResponse]
	listMovements                 *connect.Client[v1.ListMovementsRequest, v1.ListMovementsResponse]
	watchMovements                *connect.Client[v1.WatchMovementsRequest, v1.WatchMovementsResponse]
	createSaving                  *connect.Client[v1.CreateSavingRequest, v1.CreateSavingResponse]
	deleteSaving                  *connect.Client[v1.DeleteSavingRequest, v1.DeleteSavingResponse]
	listSavings                   *connect.Client[v1.ListSavingsRequest, v1.ListSavingsResponse]
	getSavingsBalance             *connect.Client[v1.GetSavingsBalanceRequest, v1.GetSavingsBalanceResponse]
	createPayable                 *connect.Client[v1.CreatePayableRequest, v1.CreatePayableResponse]
	listPayables                  *connect.Client[v1.ListPayablesRequest, v1.ListPayablesResponse]
	deletePayable                 *connect.Client[v1.DeletePayableRequest, v1.DeletePayableResponse]
	markPayablePaid               *connect.Client[v1.MarkPayablePaidRequest, v1.MarkPayablePaidResponse]
	createReceivable              *connect.Client[v1.CreateReceivableRequest, v1.CreateReceivableResponse]
	listReceivables               *connect.Client[v1.ListReceivablesRequest, v1.ListReceivablesResponse]
	deleteReceivable              *connect.Client[v1.DeleteReceivableRequest, v1.DeleteReceivableResponse]
	markReceivableCollected       *connect.Client[v1.MarkReceivableCollectedRequest, v1.MarkReceivableCollectedResponse]
	createCard                    *connect.Client[v1.CreateCardRequest, v1.CreateCardResponse]
	updateCard                    *connect.Client[v1.UpdateCardRequest, v1.UpdateCardResponse]
	listCards                     *connect.Client[v1.ListCardsRequest, v1.ListCardsResponse]
	deleteCard                    *connect.Client[v1.DeleteCardRequest, v1.DeleteCardResponse]
	computeCycle                  *connect.Client[v1.ComputeCycleRequest, v1.ComputeCycleResponse]
	createCardPurchase            *connect.Client[v1.CreateCardPurchaseRequest, v1.CreateCardPurchaseResponse]
	listCardPurchases             *connect.Client[v1.ListCardPurchasesRequest, v1.ListCardPurchasesResponse]
	deleteCardPurchase            *connect.Client[v1.DeleteCardPurchaseRequest, v1.DeleteCardPurchaseResponse]
	listPendingCycles             *connect.Client[v1.ListPendingCyclesRequest, v1.ListPendingCyclesResponse]
	liquidateCycle                *connect.Client[v1.LiquidateCycleRequest, v1.LiquidateCycleResponse]
	getMonthlySummary             *connect.Client[v1.GetMonthlySummaryRequest, v1.GetMonthlySummaryResponse]
	getCategoryBreakdown          *connect.Client[v1.GetCategoryBreakdownRequest, v1.GetCategoryBreakdownResponse]
	getCalendarHeatmap            *connect.Client[v1.GetCalendarHeatmapRequest, v1.GetCalendarHeatmapResponse]
	queryMovements                *connect.Client[v1.QueryMovementsRequest, v1.QueryMovementsResponse]
	registerPushToken             *connect.Client[v1.RegisterPushTokenRequest, v1.RegisterPushTokenResponse]
	unregisterPushToken           *connect.Client[v1.UnregisterPushTokenRequest, v1.UnregisterPushTokenResponse]
	updateNotificationPreferences *connect.Client[v1.UpdateNotificationPreferencesRequest, v1.UpdateNotificationPreferencesResponse]
	sendDueReminders              *connect.Client[v1.SendDueRemindersRequest, v1.SendDueRemindersResponse]
	exportMovements               *connect.Client[v1.ExportMovementsRequest, v1.ExportMovementsResponse]
	importStatement               *connect.Client[v1.ImportStatementRequest, v1.ImportStatementResponse]
}

// NewFinanceServiceClient constructs a client for the cuentas.v1.FinanceService service. The
// baseURL is the server root, e.g. http://localhost:8111.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &FinanceServiceClient{
		parseEntry:                    connect.NewClient[v1.ParseEntryRequest, v1.ParseEntryResponse](httpClient, baseURL+FinanceServiceParseEntryProcedure, opts...),
		createEntry:                   connect.NewClient[v1.CreateEntryRequest, v1.CreateEntryResponse](httpClient, baseURL+FinanceServiceCreateEntryProcedure, opts...),
		createMovement:                connect.NewClient[v1.CreateMovementRequest, v1.CreateMovementResponse](httpClient, baseURL+FinanceServiceCreateMovementProcedure, opts...),
		getMovement:                   connect.NewClient[v1.GetMovementRequest, v1.GetMovementResponse](httpClient, baseURL+FinanceServiceGetMovementProcedure, opts...),
		updateMovement:                connect.NewClient[v1.UpdateMovementRequest, v1.UpdateMovementResponse](httpClient, baseURL+FinanceServiceUpdateMovementProcedure, opts...),
		deleteMovement:                connect.NewClient[v1.DeleteMovementRequest, v1.DeleteMovementResponse](httpClient, baseURL+FinanceServiceDeleteMovementProcedure, opts...),
		listMovements:                 connect.NewClient[v1.ListMovementsRequest, v1.ListMovementsResponse](httpClient, baseURL+FinanceServiceListMovementsProcedure, opts...),
		watchMovements:                connect.NewClient[v1.WatchMovementsRequest, v1.WatchMovementsResponse](httpClient, baseURL+FinanceServiceWatchMovementsProcedure, opts...),
		createSaving:                  connect.NewClient[v1.CreateSavingRequest, v1.CreateSavingResponse](httpClient, baseURL+FinanceServiceCreateSavingProcedure, opts...),
		deleteSaving:                  connect.NewClient[v1.DeleteSavingRequest, v1.DeleteSavingResponse](httpClient, baseURL+FinanceServiceDeleteSavingProcedure, opts...),
		listSavings:                   connect.NewClient[v1.ListSavingsRequest, v1.ListSavingsResponse](httpClient, baseURL+FinanceServiceListSavingsProcedure, opts...),
		getSavingsBalance:             connect.NewClient[v1.GetSavingsBalanceRequest, v1.GetSavingsBalanceResponse](httpClient, baseURL+FinanceServiceGetSavingsBalanceProcedure, opts...),
		createPayable:                 connect.NewClient[v1.CreatePayableRequest, v1.CreatePayableResponse](httpClient, baseURL+FinanceServiceCreatePayableProcedure, opts...),
		listPayables:                  connect.NewClient[v1.ListPayablesRequest, v1.ListPayablesResponse](httpClient, baseURL+FinanceServiceListPayablesProcedure, opts...),
		deletePayable:                 connect.NewClient[v1.DeletePayableRequest, v1.DeletePayableResponse](httpClient, baseURL+FinanceServiceDeletePayableProcedure, opts...),
		markPayablePaid:               connect.NewClient[v1.MarkPayablePaidRequest, v1.MarkPayablePaidResponse](httpClient, baseURL+FinanceServiceMarkPayablePaidProcedure, opts...),
		createReceivable:              connect.NewClient[v1.CreateReceivableRequest, v1.CreateReceivableResponse](httpClient, baseURL+FinanceServiceCreateReceivableProcedure, opts...),
		listReceivables:               connect.NewClient[v1.ListReceivablesRequest, v1.ListReceivablesResponse](httpClient, baseURL+FinanceServiceListReceivablesProcedure, opts...),
		deleteReceivable:              connect.NewClient[v1.DeleteReceivableRequest, v1.DeleteReceivableResponse](httpClient, baseURL+FinanceServiceDeleteReceivableProcedure, opts...),
		markReceivableCollected:       connect.NewClient[v1.MarkReceivableCollectedRequest, v1.MarkReceivableCollectedResponse](httpClient, baseURL+FinanceServiceMarkReceivableCollectedProcedure, opts...),
		createCard:                    connect.NewClient[v1.CreateCardRequest, v1.CreateCardResponse](httpClient, baseURL+FinanceServiceCreateCardProcedure, opts...),
		updateCard:                    connect.NewClient[v1.UpdateCardRequest, v1.UpdateCardResponse](httpClient, baseURL+FinanceServiceUpdateCardProcedure, opts...),
		listCards:                     connect.NewClient[v1.ListCardsRequest, v1.ListCardsResponse](httpClient, baseURL+FinanceServiceListCardsProcedure, opts...),
		deleteCard:                    connect.NewClient[v1.DeleteCardRequest, v1.DeleteCardResponse](httpClient, baseURL+FinanceServiceDeleteCardProcedure, opts...),
		computeCycle:                  connect.NewClient[v1.ComputeCycleRequest, v1.ComputeCycleResponse](httpClient, baseURL+FinanceServiceComputeCycleProcedure, opts...),
		createCardPurchase:            connect.NewClient[v1.CreateCardPurchaseRequest, v1.CreateCardPurchaseResponse](httpClient, baseURL+FinanceServiceCreateCardPurchaseProcedure, opts...),
		listCardPurchases:             connect.NewClient[v1.ListCardPurchasesRequest, v1.ListCardPurchasesResponse](httpClient, baseURL+FinanceServiceListCardPurchasesProcedure, opts...),
		deleteCardPurchase:            connect.NewClient[v1.DeleteCardPurchaseRequest, v1.DeleteCardPurchaseResponse](httpClient, baseURL+FinanceServiceDeleteCardPurchaseProcedure, opts...),
		listPendingCycles:             connect.NewClient[v1.ListPendingCyclesRequest, v1.ListPendingCyclesResponse](httpClient, baseURL+FinanceServiceListPendingCyclesProcedure, opts...),
		liquidateCycle:                connect.NewClient[v1.LiquidateCycleRequest, v1.LiquidateCycleResponse](httpClient, baseURL+FinanceServiceLiquidateCycleProcedure, opts...),
		getMonthlySummary:             connect.NewClient[v1.GetMonthlySummaryRequest, v1.GetMonthlySummaryResponse](httpClient, baseURL+FinanceServiceGetMonthlySummaryProcedure, opts...),
		getCategoryBreakdown:          connect.NewClient[v1.GetCategoryBreakdownRequest, v1.GetCategoryBreakdownResponse](httpClient, baseURL+FinanceServiceGetCategoryBreakdownProcedure, opts...),
		getCalendarHeatmap:            connect.NewClient[v1.GetCalendarHeatmapRequest, v1.GetCalendarHeatmapResponse](httpClient, baseURL+FinanceServiceGetCalendarHeatmapProcedure, opts...),
		queryMovements:                connect.NewClient[v1.QueryMovementsRequest, v1.QueryMovementsResponse](httpClient, baseURL+FinanceServiceQueryMovementsProcedure, opts...),
		registerPushToken:             connect.NewClient[v1.RegisterPushTokenRequest, v1.RegisterPushTokenResponse](httpClient, baseURL+FinanceServiceRegisterPushTokenProcedure, opts...),
		unregisterPushToken:           connect.NewClient[v1.UnregisterPushTokenRequest, v1.UnregisterPushTokenResponse](httpClient, baseURL+FinanceServiceUnregisterPushTokenProcedure, opts...),
		updateNotificationPreferences: connect.NewClient[v1.UpdateNotificationPreferencesRequest, v1.UpdateNotificationPreferencesResponse](httpClient, baseURL+FinanceServiceUpdateNotificationPreferencesProcedure, opts...),
		sendDueReminders:              connect.NewClient[v1.SendDueRemindersRequest, v1.SendDueRemindersResponse](httpClient, baseURL+FinanceServiceSendDueRemindersProcedure, opts...),
		exportMovements:               connect.NewClient[v1.ExportMovementsRequest, v1.ExportMovementsResponse](httpClient, baseURL+FinanceServiceExportMovementsProcedure, opts...),
		importStatement:               connect.NewClient[v1.ImportStatementRequest, v1.ImportStatementResponse](httpClient, baseURL+FinanceServiceImportStatementProcedure, opts...),
	}
}

// ParseEntry calls cuentas.v1.FinanceService.ParseEntry.
func (c *FinanceServiceClient) ParseEntry(ctx context.Context, req *connect.Request[v1.ParseEntryRequest]) (*connect.Response[v1.ParseEntryResponse], error) {
	return c.parseEntry.CallUnary(ctx, req)
}

// CreateEntry calls cuentas.v1.FinanceService.CreateEntry.
func (c *FinanceServiceClient) CreateEntry(ctx context.Context, req *connect.Request[v1.CreateEntryRequest]) (*connect.Response[v1.CreateEntryResponse], error) {
	return c.createEntry.CallUnary(ctx, req)
}

// CreateMovement calls cuentas.v1.FinanceService.CreateMovement.
func (c *FinanceServiceClient) CreateMovement(ctx context.Context, req *connect.Request[v1.CreateMovementRequest]) (*connect.Response[v1.CreateMovementResponse], error) {
	return c.createMovement.CallUnary(ctx, req)
}

// GetMovement calls cuentas.v1.FinanceService.GetMovement.
func (c *FinanceServiceClient) GetMovement(ctx context.Context, req *connect.Request[v1.GetMovementRequest]) (*connect.Response[v1.GetMovementResponse], error) {
	return c.getMovement.CallUnary(ctx, req)
}

// UpdateMovement calls cuentas.v1.FinanceService.UpdateMovement.
func (c *FinanceServiceClient) UpdateMovement(ctx context.Context, req *connect.Request[v1.UpdateMovementRequest]) (*connect.Response[v1.UpdateMovementResponse], error) {
	return c.updateMovement.CallUnary(ctx, req)
}

// DeleteMovement calls cuentas.v1.FinanceService.DeleteMovement.
func (c *FinanceServiceClient) DeleteMovement(ctx context.Context, req *connect.Request[v1.DeleteMovementRequest]) (*connect.Response[v1.DeleteMovementResponse], error) {
	return c.deleteMovement.CallUnary(ctx, req)
}

// ListMovements calls cuentas.v1.FinanceService.ListMovements.
func (c *FinanceServiceClient) ListMovements(ctx context.Context, req *connect.Request[v1.ListMovementsRequest]) (*connect.Response[v1.ListMovementsResponse], error) {
	return c.listMovements.CallUnary(ctx, req)
}

// WatchMovements calls cuentas.v1.FinanceService.WatchMovements.
func (c *FinanceServiceClient) WatchMovements(ctx context.Context, req *connect.Request[v1.WatchMovementsRequest]) (*connect.ServerStreamForClient[v1.WatchMovementsResponse], error) {
	return c.watchMovements.CallServerStream(ctx, req)
}

// CreateSaving calls cuentas.v1.FinanceService.CreateSaving.
func (c *FinanceServiceClient) CreateSaving(ctx context.Context, req *connect.Request[v1.CreateSavingRequest]) (*connect.Response[v1.CreateSavingResponse], error) {
	return c.createSaving.CallUnary(ctx, req)
}

// DeleteSaving calls cuentas.v1.FinanceService.DeleteSaving.
func (c *FinanceServiceClient) DeleteSaving(ctx context.Context, req *connect.Request[v1.DeleteSavingRequest]) (*connect.Response[v1.DeleteSavingResponse], error) {
	return c.deleteSaving.CallUnary(ctx, req)
}

// ListSavings calls cuentas.v1.FinanceService.ListSavings.
func (c *FinanceServiceClient) ListSavings(ctx context.Context, req *connect.Request[v1.ListSavingsRequest]) (*connect.Response[v1.ListSavingsResponse], error) {
	return c.listSavings.CallUnary(ctx, req)
}

// GetSavingsBalance calls cuentas.v1.FinanceService.GetSavingsBalance.
func (c *FinanceServiceClient) GetSavingsBalance(ctx context.Context, req *connect.Request[v1.GetSavingsBalanceRequest]) (*connect.Response[v1.GetSavingsBalanceResponse], error) {
	return c.getSavingsBalance.CallUnary(ctx, req)
}

// CreatePayable calls cuentas.v1.FinanceService.CreatePayable.
func (c *FinanceServiceClient) CreatePayable(ctx context.Context, req *connect.Request[v1.CreatePayableRequest]) (*connect.Response[v1.CreatePayableResponse], error) {
	return c.createPayable.CallUnary(ctx, req)
}

// ListPayables calls cuentas.v1.FinanceService.ListPayables.
func (c *FinanceServiceClient) ListPayables(ctx context.Context, req *connect.Request[v1.ListPayablesRequest]) (*connect.Response[v1.ListPayablesResponse], error) {
	return c.listPayables.CallUnary(ctx, req)
}

// DeletePayable calls cuentas.v1.FinanceService.DeletePayable.
func (c *FinanceServiceClient) DeletePayable(ctx context.Context, req *connect.Request[v1.DeletePayableRequest]) (*connect.Response[v1.DeletePayableResponse], error) {
	return c.deletePayable.CallUnary(ctx, req)
}

// MarkPayablePaid calls cuentas.v1.FinanceService.MarkPayablePaid.
func (c *FinanceServiceClient) MarkPayablePaid(ctx context.Context, req *connect.Request[v1.MarkPayablePaidRequest]) (*connect.Response[v1.MarkPayablePaidResponse], error) {
	return c.markPayablePaid.CallUnary(ctx, req)
}

// CreateReceivable calls cuentas.v1.FinanceService.CreateReceivable.
func (c *FinanceServiceClient) CreateReceivable(ctx context.Context, req *connect.Request[v1.CreateReceivableRequest]) (*connect.Response[v1.CreateReceivableResponse], error) {
	return c.createReceivable.CallUnary(ctx, req)
}

// ListReceivables calls cuentas.v1.FinanceService.ListReceivables.
func (c *FinanceServiceClient) ListReceivables(ctx context.Context, req *connect.Request[v1.ListReceivablesRequest]) (*connect.Response[v1.ListReceivablesResponse], error) {
	return c.listReceivables.CallUnary(ctx, req)
}

// DeleteReceivable calls cuentas.v1.FinanceService.DeleteReceivable.
func (c *FinanceServiceClient) DeleteReceivable(ctx context.Context, req *connect.Request[v1.DeleteReceivableRequest]) (*connect.Response[v1.DeleteReceivableResponse], error) {
	return c.deleteReceivable.CallUnary(ctx, req)
}

// MarkReceivableCollected calls cuentas.v1.FinanceService.MarkReceivableCollected.
func (c *FinanceServiceClient) MarkReceivableCollected(ctx context.Context, req *connect.Request[v1.MarkReceivableCollectedRequest]) (*connect.Response[v1.MarkReceivableCollectedResponse], error) {
	return c.markReceivableCollected.CallUnary(ctx, req)
}

// CreateCard calls cuentas.v1.FinanceService.CreateCard.
func (c *FinanceServiceClient) CreateCard(ctx context.Context, req *connect.Request[v1.CreateCardRequest]) (*connect.Response[v1.CreateCardResponse], error) {
	return c.createCard.CallUnary(ctx, req)
}

// UpdateCard calls cuentas.v1.FinanceService.UpdateCard.
func (c *FinanceServiceClient) UpdateCard(ctx context.Context, req *connect.Request[v1.UpdateCardRequest]) (*connect.Response[v1.UpdateCardResponse], error) {
	return c.updateCard.CallUnary(ctx, req)
}

// ListCards calls cuentas.v1.FinanceService.ListCards.
func (c *FinanceServiceClient) ListCards(ctx context.Context, req *connect.Request[v1.ListCardsRequest]) (*connect.Response[v1.ListCardsResponse], error) {
	return c.listCards.CallUnary(ctx, req)
}

// DeleteCard calls cuentas.v1.FinanceService.DeleteCard.
func (c *FinanceServiceClient) DeleteCard(ctx context.Context, req *connect.Request[v1.DeleteCardRequest]) (*connect.Response[v1.DeleteCardResponse], error) {
	return c.deleteCard.CallUnary(ctx, req)
}

// ComputeCycle calls cuentas.v1.FinanceService.ComputeCycle.
func (c *FinanceServiceClient) ComputeCycle(ctx context.Context, req *connect.Request[v1.ComputeCycleRequest]) (*connect.Response[v1.ComputeCycleResponse], error) {
	return c.computeCycle.CallUnary(ctx, req)
}

// CreateCardPurchase calls cuentas.v1.FinanceService.CreateCardPurchase.
func (c *FinanceServiceClient) CreateCardPurchase(ctx context.Context, req *connect.Request[v1.CreateCardPurchaseRequest]) (*connect.Response[v1.CreateCardPurchaseResponse], error) {
	return c.createCardPurchase.CallUnary(ctx, req)
}

// ListCardPurchases calls cuentas.v1.FinanceService.ListCardPurchases.
func (c *FinanceServiceClient) ListCardPurchases(ctx context.Context, req *connect.Request[v1.ListCardPurchasesRequest]) (*connect.Response[v1.ListCardPurchasesResponse], error) {
	return c.listCardPurchases.CallUnary(ctx, req)
}

// DeleteCardPurchase calls cuentas.v1.FinanceService.DeleteCardPurchase.
func (c *FinanceServiceClient) DeleteCardPurchase(ctx context.Context, req *connect.Request[v1.DeleteCardPurchaseRequest]) (*connect.Response[v1.DeleteCardPurchaseResponse], error) {
	return c.deleteCardPurchase.CallUnary(ctx, req)
}

// ListPendingCycles calls cuentas.v1.FinanceService.ListPendingCycles.
func (c *FinanceServiceClient) ListPendingCycles(ctx context.Context, req *connect.Request[v1.ListPendingCyclesRequest]) (*connect.Response[v1.ListPendingCyclesResponse], error) {
	return c.listPendingCycles.CallUnary(ctx, req)
}

// LiquidateCycle calls cuentas.v1.FinanceService.LiquidateCycle.
func (c *FinanceServiceClient) LiquidateCycle(ctx context.Context, req *connect.Request[v1.LiquidateCycleRequest]) (*connect.Response[v1.LiquidateCycleResponse], error) {
	return c.liquidateCycle.CallUnary(ctx, req)
}

// GetMonthlySummary calls cuentas.v1.FinanceService.GetMonthlySummary.
func (c *FinanceServiceClient) GetMonthlySummary(ctx context.Context, req *connect.Request[v1.GetMonthlySummaryRequest]) (*connect.Response[v1.GetMonthlySummaryResponse], error) {
	return c.getMonthlySummary.CallUnary(ctx, req)
}

// GetCategoryBreakdown calls cuentas.v1.FinanceService.GetCategoryBreakdown.
func (c *FinanceServiceClient) GetCategoryBreakdown(ctx context.Context, req *connect.Request[v1.GetCategoryBreakdownRequest]) (*connect.Response[v1.GetCategoryBreakdownResponse], error) {
	return c.getCategoryBreakdown.CallUnary(ctx, req)
}

// GetCalendarHeatmap calls cuentas.v1.FinanceService.GetCalendarHeatmap.
func (c *FinanceServiceClient) GetCalendarHeatmap(ctx context.Context, req *connect.Request[v1.GetCalendarHeatmapRequest]) (*connect.Response[v1.GetCalendarHeatmapResponse], error) {
	return c.getCalendarHeatmap.CallUnary(ctx, req)
}

// QueryMovements calls cuentas.v1.FinanceService.QueryMovements.
func (c *FinanceServiceClient) QueryMovements(ctx context.Context, req *connect.Request[v1.QueryMovementsRequest]) (*connect.Response[v1.QueryMovementsResponse], error) {
	return c.queryMovements.CallUnary(ctx, req)
}

// RegisterPushToken calls cuentas.v1.FinanceService.RegisterPushToken.
func (c *FinanceServiceClient) RegisterPushToken(ctx context.Context, req *connect.Request[v1.RegisterPushTokenRequest]) (*connect.Response[v1.RegisterPushTokenResponse], error) {
	return c.registerPushToken.CallUnary(ctx, req)
}

// UnregisterPushToken calls cuentas.v1.FinanceService.UnregisterPushToken.
func (c *FinanceServiceClient) UnregisterPushToken(ctx context.Context, req *connect.Request[v1.UnregisterPushTokenRequest]) (*connect.Response[v1.UnregisterPushTokenResponse], error) {
	return c.unregisterPushToken.CallUnary(ctx, req)
}

// UpdateNotificationPreferences calls cuentas.v1.FinanceService.UpdateNotificationPreferences.
func (c *FinanceServiceClient) UpdateNotificationPreferences(ctx context.Context, req *connect.Request[v1.UpdateNotificationPreferencesRequest]) (*connect.Response[v1.UpdateNotificationPreferencesResponse], error) {
	return c.updateNotificationPreferences.CallUnary(ctx, req)
}

// SendDueReminders calls cuentas.v1.FinanceService.SendDueReminders.
func (c *FinanceServiceClient) SendDueReminders(ctx context.Context, req *connect.Request[v1.SendDueRemindersRequest]) (*connect.Response[v1.SendDueRemindersResponse], error) {
	return c.sendDueReminders.CallUnary(ctx, req)
}

// ExportMovements calls cuentas.v1.FinanceService.ExportMovements.
func (c *FinanceServiceClient) ExportMovements(ctx context.Context, req *connect.Request[v1.ExportMovementsRequest]) (*connect.Response[v1.ExportMovementsResponse], error) {
	return c.exportMovements.CallUnary(ctx, req)
}

// ImportStatement calls cuentas.v1.FinanceService.ImportStatement.
func (c *FinanceServiceClient) ImportStatement(ctx context.Context, req *connect.Request[v1.ImportStatementRequest]) (*connect.Response[v1.ImportStatementResponse], error) {
	return c.importStatement.CallUnary(ctx, req)
}
