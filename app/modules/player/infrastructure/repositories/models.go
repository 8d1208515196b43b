package playerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is a registered member of the group. Players are never renamed or removed.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}
