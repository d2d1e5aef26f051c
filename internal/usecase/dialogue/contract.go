package dialogue

import (
	"context"

	"github.com/kailas-cloud/finsite/internal/catalog"
	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
)

// Repository stores dialogue sessions.
type Repository interface {
	GetConversation(ctx context.Context, id string) (*domdlg.Session, error)
	SaveConversation(ctx context.Context, s *domdlg.Session) error
	DeleteConversation(ctx context.Context, id string) error
}

// Products resolves recommended product ids.
type Products interface {
	Product(id string) (catalog.Product, bool)
}

// Recorder counts dialogue events.
type Recorder interface {
	Intent(intent string)
	Transition(stage string)
	Lead(kind string)
}
