package domain

import (
	"encoding/json"
	"time"
)

// BackupVersion is the document version written by exports.
const BackupVersion = 1

// Backup is a full dump of every collection. Notes and ratings are owned by
// other tools and are carried as opaque JSON.
type Backup struct {
	Ads       []json.RawMessage `json:"ads"`
	Clients   []json.RawMessage `json:"clients"`
	Budget    []json.RawMessage `json:"budget"`
	Notes     []json.RawMessage `json:"notes"`
	Ratings   []json.RawMessage `json:"ratings"`
	CreatedAt time.Time         `json:"createdAt"`
	Version   int               `json:"version"`
}
