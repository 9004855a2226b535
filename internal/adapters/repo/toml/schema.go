package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int               `toml:"version"`
	Writer      string            `toml:"writer,omitempty"`
	Revision    int64             `toml:"revision"`
	Session     sessionSchema     `toml:"session"`
	CoverImages map[string]string `toml:"cover_images,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	UserID    string `toml:"user_id,omitempty"`
	TokenRef  string `toml:"token_ref,omitempty"`
	UserImage string `toml:"user_image,omitempty"`
}
