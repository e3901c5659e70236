//go:build ignore
// +build ignore

// seed-data fills a running server with a realistic month of data for one
// user: quick entries, a credit card with purchases across two cycles, and
// payables and receivables.
//
// Usage:
//
//	go run scripts/seed-data.go
//	API_URL=http://localhost:8111 USER_ID=alice go run scripts/seed-data.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/api/cuentas/v1/cuentasv1connect"
	"github.com/shopspring/decimal"
)

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8111"
	}
	userID := os.Getenv("USER_ID")
	authToken := os.Getenv("AUTH_TOKEN")

	log.Printf("Seeding data via %s", apiURL)

	var opts []connect.ClientOption
	switch {
	case authToken != "":
		log.Println("Using provided auth token")
		opts = append(opts, connect.WithInterceptors(headerInterceptor("Authorization", "Bearer "+authToken)))
	case userID != "":
		// Requires the backend to run with SKIP_AUTH=true.
		log.Printf("Impersonating user %s", userID)
		opts = append(opts, connect.WithInterceptors(headerInterceptor("X-Debug-Impersonate-User", userID)))
	default:
		log.Println("No token or USER_ID: data goes to the local dev user")
	}

	client := cuentasv1connect.NewFinanceServiceClient(http.DefaultClient, apiURL, opts...)
	ctx := context.Background()
	today := civil.DateOf(time.Now())

	steps := []struct {
		name string
		fn   func(context.Context, *cuentasv1connect.FinanceServiceClient, civil.Date) error
	}{
		{"entries", seedEntries},
		{"cards", seedCards},
		{"payables", seedPayables},
		{"receivables", seedReceivables},
	}
	for _, s := range steps {
		if err := s.fn(ctx, client, today); err != nil {
			log.Fatalf("Failed to seed %s: %v", s.name, err)
		}
	}

	if err := verify(ctx, client, today); err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	log.Println("Seeding complete")
}

func headerInterceptor(key, value string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set(key, value)
			return next(ctx, req)
		}
	}
}

func seedEntries(ctx context.Context, client *cuentasv1connect.FinanceServiceClient, _ civil.Date) error {
	entries := []string{
		"Cobré el sueldo 850.000",
		"Facturé 120.000 a un cliente",
		"Pagué 20.000 del super",
		"Gasté 3.500,50 en la farmacia",
		"Pagué 18.000 de luz",
		"Cargué nafta 25.000",
		"Ahorré 300 dólares",
		"Compré 200 dólares a 1500",
	}
	for _, text := range entries {
		resp, err := client.CreateEntry(ctx, connect.NewRequest(&v1.CreateEntryRequest{Text: text}))
		if err != nil {
			return fmt.Errorf("entry %q: %w", text, err)
		}
		log.Printf("  %-35s -> %s", text, resp.Msg.Entry.Kind)
	}
	return nil
}

func seedCards(ctx context.Context, client *cuentasv1connect.FinanceServiceClient, today civil.Date) error {
	card, err := client.CreateCard(ctx, connect.NewRequest(&v1.CreateCardRequest{
		Name:     "Visa",
		CloseDay: 24,
		DueDay:   5,
	}))
	if err != nil {
		return err
	}

	purchases := []struct {
		desc     string
		amount   string
		category string
		daysAgo  int
	}{
		{"Zapatillas", "85000", "Ropa", 40},
		{"Cena aniversario", "42000", "Salidas", 33},
		{"Streaming", "6500", "Suscripciones", 12},
		{"Libreria", "15300.75", "Educacion", 3},
	}
	for _, p := range purchases {
		d := today.AddDays(-p.daysAgo)
		resp, err := client.CreateCardPurchase(ctx, connect.NewRequest(&v1.CreateCardPurchaseRequest{
			CardID:      card.Msg.Card.ID,
			Description: p.desc,
			Amount:      decimal.RequireFromString(p.amount),
			Category:    p.category,
			Date:        &d,
		}))
		if err != nil {
			return fmt.Errorf("purchase %q: %w", p.desc, err)
		}
		log.Printf("  %-20s cycle %s due %s", p.desc, resp.Msg.Cycle.ID, resp.Msg.Cycle.DueDate)
	}
	return nil
}

func seedPayables(ctx context.Context, client *cuentasv1connect.FinanceServiceClient, today civil.Date) error {
	for _, p := range []struct {
		desc, amount, category string
		inDays                 int
	}{
		{"Alquiler", "350000", "Vivienda", 5},
		{"Gas", "12000", "Servicios", 12},
		{"Seguro auto", "48000", "Transporte", 20},
	} {
		if _, err := client.CreatePayable(ctx, connect.NewRequest(&v1.CreatePayableRequest{
			Description: p.desc,
			Amount:      decimal.RequireFromString(p.amount),
			Category:    p.category,
			DueDate:     today.AddDays(p.inDays),
		})); err != nil {
			return fmt.Errorf("payable %q: %w", p.desc, err)
		}
	}
	return nil
}

func seedReceivables(ctx context.Context, client *cuentasv1connect.FinanceServiceClient, today civil.Date) error {
	_, err := client.CreateReceivable(ctx, connect.NewRequest(&v1.CreateReceivableRequest{
		Description: "Prestamo a Juan",
		Amount:      decimal.NewFromInt(30000),
		Category:    "Prestamos",
		DueDate:     today.AddDays(10),
	}))
	return err
}

func verify(ctx context.Context, client *cuentasv1connect.FinanceServiceClient, today civil.Date) error {
	movements, err := client.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{}))
	if err != nil {
		return err
	}
	cycles, err := client.ListPendingCycles(ctx, connect.NewRequest(&v1.ListPendingCyclesRequest{}))
	if err != nil {
		return err
	}
	summary, err := client.GetMonthlySummary(ctx, connect.NewRequest(&v1.GetMonthlySummaryRequest{Year: today.Year}))
	if err != nil {
		return err
	}
	balance, err := client.GetSavingsBalance(ctx, connect.NewRequest(&v1.GetSavingsBalanceRequest{}))
	if err != nil {
		return err
	}

	if len(movements.Msg.Movements) == 0 {
		return fmt.Errorf("no movements listed after seeding")
	}
	log.Printf("  movements: %d", len(movements.Msg.Movements))
	log.Printf("  pending cycles: %d", len(cycles.Msg.Cycles))
	log.Printf("  %d income %s expense %s", summary.Msg.Year, summary.Msg.TotalIncome.StringFixed(2), summary.Msg.TotalExpense.StringFixed(2))
	log.Printf("  savings %s %s", balance.Msg.ForeignBalance.String(), balance.Msg.Currency)
	return nil
}
