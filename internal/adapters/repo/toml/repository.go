// Package toml persists the local session to a TOML file shared by every sc
// process of the same user.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SessionPathKey    = "session.path"
	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".skillconnect"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

type Repository struct {
	sessionPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.SessionRepository = (*Repository)(nil)
	_ ports.SessionWatcher    = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(SessionPathKey, filepath.Join(homeDir, sessionConfigDir, sessionConfigFile))

	sessionPath := cfg.GetString(SessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Repository{sessionPath: sessionPath, mu: lockForPath(sessionPath)}, nil
}

func (r *Repository) Path() string {
	return r.sessionPath
}

func (r *Repository) Load(ctx context.Context) (ports.StoredSession, error) {
	if err := ctx.Err(); err != nil {
		return ports.StoredSession{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return ports.StoredSession{}, err
	}

	return fromSchema(file), nil
}

// Save replaces the stored session. The revision is assigned here, one past
// whatever is currently on disk, so it increases across processes.
func (r *Repository) Save(ctx context.Context, session ports.StoredSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.readSchema()
	if err != nil {
		return err
	}

	file := toSchema(session)
	file.Revision = current.Revision + 1

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// writeSchema replaces the file with a rename so readers in other processes
// never observe a partially written session.
func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(session ports.StoredSession) fileSchema {
	file := fileSchema{
		Version:  currentSchemaVersion,
		Writer:   session.Writer,
		Revision: session.Revision,
		Session: sessionSchema{
			UserID:    string(session.UserID),
			TokenRef:  session.TokenRef,
			UserImage: session.UserImage,
		},
	}

	if len(session.CoverImages) > 0 {
		file.CoverImages = make(map[string]string, len(session.CoverImages))
		for userID, url := range session.CoverImages {
			if url == "" {
				continue
			}
			file.CoverImages[string(userID)] = url
		}
	}

	return file
}

func fromSchema(file fileSchema) ports.StoredSession {
	session := ports.StoredSession{
		UserID:    domain.UserID(file.Session.UserID),
		TokenRef:  file.Session.TokenRef,
		UserImage: file.Session.UserImage,
		Writer:    file.Writer,
		Revision:  file.Revision,
	}

	if len(file.CoverImages) > 0 {
		session.CoverImages = make(map[domain.UserID]string, len(file.CoverImages))
		for userID, url := range file.CoverImages {
			session.CoverImages[domain.UserID(userID)] = url
		}
	}

	return session
}
