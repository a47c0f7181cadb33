package messages

import (
	"encoding/base64"
	"encoding/json"

	"github.com/cbodonnell/lumen/pkg/game/types"
)

// Error codes
const (
	ErrorCodeMethodNotAllowed = "method_not_allowed"
	ErrorCodeServerError      = "server_error"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeBadRequest       = "bad_request"
)

// SyncResponse is the body of a player stats response
type SyncResponse struct {
	Mode      types.GameMode `json:"mode"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
}

// SkinResponse is the body of a skin response.
// Skin is the base64 encoded front view, empty when there is no skin.
type SkinResponse struct {
	SkinWidth  int    `json:"skin_width"`
	SkinHeight int    `json:"skin_height"`
	Skin       string `json:"skin"`
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func SyncResponseFromSnapshot(snapshot types.Snapshot) SyncResponse {
	return SyncResponse{
		Mode:      snapshot.Mode,
		Health:    snapshot.Health,
		MaxHealth: snapshot.MaxHealth,
	}
}

func SkinResponseFromSnapshot(snapshot types.Snapshot) SkinResponse {
	if !snapshot.HasSkin() {
		return SkinResponse{}
	}
	return SkinResponse{
		SkinWidth:  snapshot.SkinWidth,
		SkinHeight: snapshot.SkinHeight,
		Skin:       base64.StdEncoding.EncodeToString(snapshot.SkinPixels),
	}
}

// Serialize encodes a response body without a trailing newline.
func Serialize(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
