package handlers

import (
	"context"
	"net/http"

	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/messages"
	"github.com/cbodonnell/lumen/pkg/skin"
)

// SnapshotRequester reads player snapshots. Implementations never fail:
// they return a default snapshot when the state cannot be read.
type SnapshotRequester interface {
	RequestSnapshot(ctx context.Context, includeSkin bool) types.Snapshot
	RequestSkinSnapshot(ctx context.Context, format skin.Format) types.Snapshot
}

// HandleSync responds with the player's game mode and health.
func HandleSync(snapshots SnapshotRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := snapshots.RequestSnapshot(r.Context(), false)
		WriteJSON(w, http.StatusOK, messages.SyncResponseFromSnapshot(snapshot))
	}
}

// HandleSkin responds with the player's base64 encoded front view.
// The optional format query parameter selects the encoding.
func HandleSkin(snapshots SnapshotRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snapshot types.Snapshot
		if name := r.URL.Query().Get("format"); name != "" {
			format, err := skin.ParseFormat(name)
			if err != nil {
				log.Debug("Rejected skin request: %v", err)
				WriteError(w, http.StatusBadRequest, messages.ErrorCodeBadRequest)
				return
			}
			snapshot = snapshots.RequestSkinSnapshot(r.Context(), format)
		} else {
			snapshot = snapshots.RequestSnapshot(r.Context(), true)
		}
		WriteJSON(w, http.StatusOK, messages.SkinResponseFromSnapshot(snapshot))
	}
}

func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, messages.ErrorCodeMethodNotAllowed)
	}
}

func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, messages.ErrorCodeNotFound)
	}
}
