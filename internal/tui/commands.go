package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Async work runs in tea.Cmd goroutines. Request deadlines come from the
// API client's own timeout, so commands use a background context.

func loadCatalogCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{err: svc.Catalog.Refresh(context.Background())}
	}
}

func loadWishlistCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		places, err := svc.Wishlist.Places(context.Background())
		if err != nil {
			return wishlistLoadedMsg{err: err}
		}
		ids, err := svc.Wishlist.IDs(context.Background())
		if err != nil {
			return wishlistLoadedMsg{err: err}
		}
		set := make(map[int64]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		return wishlistLoadedMsg{places: places, ids: set}
	}
}

func toggleWishlistCmd(svc Services, placeID int64) tea.Cmd {
	return func() tea.Msg {
		onList, err := svc.Wishlist.Toggle(context.Background(), placeID)
		return wishlistToggledMsg{placeID: placeID, onList: onList, err: err}
	}
}

func loadReservationsCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		reservations, err := svc.Reservations.ListMine(context.Background())
		return reservationsLoadedMsg{reservations: reservations, err: err}
	}
}

func loadIntervalsCmd(svc Services, placeID, excludeID int64) tea.Cmd {
	return func() tea.Msg {
		intervals, err := svc.Reservations.BookedIntervals(context.Background(), placeID, excludeID)
		return intervalsLoadedMsg{placeID: placeID, intervals: intervals, err: err}
	}
}

func cancelReservationCmd(svc Services, id int64) tea.Cmd {
	return func() tea.Msg {
		return reservationCancelledMsg{id: id, err: svc.Reservations.Cancel(context.Background(), id)}
	}
}

func loadProfileCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		user, err := svc.Profile.Get(context.Background())
		return profileLoadedMsg{user: user, err: err}
	}
}
