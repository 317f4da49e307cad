// Command payway-mockgw runs a local mock PayWay gateway for development
// and integration testing. It verifies request hashes with the merchant
// credentials from the environment and approves every valid purchase.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"payway-go/internal/config"
	"payway-go/internal/mockgw"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	server := mockgw.New(cfg.PayWay.MerchantID, cfg.PayWay.APIKey, log)

	addr := ":" + cfg.App.Port
	log.Info().Str("addr", addr).Str("merchant_id", cfg.PayWay.MerchantID).Msg("mock gateway listening")
	if err := server.Router().Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
