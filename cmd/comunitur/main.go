package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/config"
	"github.com/comunitur/comunitur/internal/domain/auth"
	"github.com/comunitur/comunitur/internal/domain/catalog"
	"github.com/comunitur/comunitur/internal/domain/payment"
	"github.com/comunitur/comunitur/internal/domain/profile"
	"github.com/comunitur/comunitur/internal/domain/reservation"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/domain/theme"
	"github.com/comunitur/comunitur/internal/domain/wishlist"
	"github.com/comunitur/comunitur/internal/pkg/localstore"
	"github.com/comunitur/comunitur/internal/pkg/logger"
	"github.com/comunitur/comunitur/internal/tui"
)

const userAgent = "comunitur-tui/1.0"

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		LogFile:     cfg.LogFile,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	storage, err := localstore.New(cfg.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "state dir %s: %v\n", cfg.StateDir, err)
		os.Exit(1)
	}

	sessions := session.NewStore(storage)
	// Restore before the first frame so a returning user is never shown
	// a login prompt while their session loads.
	sessions.Restore()

	client := api.NewClient(cfg.APIBaseURL, sessions, cfg.HTTPTimeout, userAgent)
	reader := catalog.NewReader(client)

	services := tui.Services{
		Auth:         auth.NewService(client, sessions),
		Reservations: reservation.NewService(client, sessions),
		Payments:     payment.NewService(client, sessions),
		Wishlist:     wishlist.NewService(client, sessions, reader),
		Profile:      profile.NewService(client, sessions),
		Catalog:      reader,
		Sessions:     sessions,
		Theme:        theme.NewStore(),
	}

	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("env", cfg.Env).
		Bool("restored_session", sessions.Authenticated()).
		Msg("starting comunitur")

	program := tea.NewProgram(tui.New(services), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "comunitur: %v\n", err)
		os.Exit(1)
	}
}
