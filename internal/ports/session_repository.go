package ports

import (
	"context"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

// StoredSession is the durable form of a session. The token itself lives in
// the SecretStore under TokenRef.
type StoredSession struct {
	UserID      domain.UserID
	TokenRef    string
	UserImage   string
	CoverImages map[domain.UserID]string
	Writer      string
	Revision    int64
}

type SessionRepository interface {
	Load(ctx context.Context) (StoredSession, error)
	Save(ctx context.Context, session StoredSession) error
}

// SessionWatcher reports that the durable session store was rewritten,
// possibly by another process.
type SessionWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}
