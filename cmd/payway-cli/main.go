// Command payway-cli exercises the PayWay SDK against a configured gateway:
//
//	payway-cli purchase -amount 19.99 -currency USD -option cards
//	payway-cli check -tran-id <id>
//	payway-cli list -from-date 20260101000000
//
// Credentials come from the environment (PAYWAY_BASE_URL,
// PAYWAY_MERCHANT_ID, PAYWAY_API_KEY), optionally via a .env file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"payway-go/internal/config"
	"payway-go/payway"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: payway-cli <purchase|check|list> [flags]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	client, err := payway.NewClient(payway.Config{
		BaseURL:    cfg.PayWay.BaseURL,
		MerchantID: cfg.PayWay.MerchantID,
		APIKey:     cfg.PayWay.APIKey,
	}, payway.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("create client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var payload map[string]any
	switch os.Args[1] {
	case "purchase":
		payload, err = runPurchase(ctx, client, os.Args[2:])
	case "check":
		payload, err = runCheck(ctx, client, os.Args[2:])
	case "list":
		payload, err = runList(ctx, client, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("request failed")
	}

	out, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Println(string(out))
}

func runPurchase(ctx context.Context, client *payway.Client, args []string) (map[string]any, error) {
	fs := flag.NewFlagSet("purchase", flag.ExitOnError)
	tranID := fs.String("tran-id", uuid.NewString(), "transaction ID")
	amount := fs.String("amount", "", "amount, e.g. 19.99")
	currency := fs.String("currency", payway.CurrencyUSD, "USD or KHR")
	option := fs.String("option", "cards", "payment option")
	firstname := fs.String("firstname", "", "customer first name")
	lastname := fs.String("lastname", "", "customer last name")
	email := fs.String("email", "", "customer email")
	phone := fs.String("phone", "", "customer phone")
	returnURL := fs.String("return-url", "", "server-side callback URL")
	continueURL := fs.String("continue-url", "", "continue success URL")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return nil, fmt.Errorf("invalid -amount %q: %w", *amount, err)
	}

	return client.CreateTransaction(ctx, payway.CreateTransactionParams{
		TranID:             *tranID,
		Amount:             amt,
		Currency:           *currency,
		PaymentOption:      *option,
		Firstname:          *firstname,
		Lastname:           *lastname,
		Email:              *email,
		Phone:              *phone,
		ReturnURL:          *returnURL,
		ContinueSuccessURL: *continueURL,
	})
}

func runCheck(ctx context.Context, client *payway.Client, args []string) (map[string]any, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	tranID := fs.String("tran-id", "", "transaction ID to look up")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return client.CheckTransaction(ctx, *tranID)
}

func runList(ctx context.Context, client *payway.Client, args []string) (map[string]any, error) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fromDate := fs.String("from-date", "", "from date (yyyyMMddHHmmss)")
	toDate := fs.String("to-date", "", "to date (yyyyMMddHHmmss)")
	status := fs.String("status", "", "transaction status filter")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return client.TransactionList(ctx, payway.TransactionListParams{
		FromDate: *fromDate,
		ToDate:   *toDate,
		Status:   *status,
	})
}
