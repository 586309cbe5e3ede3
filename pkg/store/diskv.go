package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/scheduler"
)

const (
	sessionPrefix = "session"
	// DefaultSession is used when no session name is given.
	DefaultSession = "default"
)

// Config is the part of the app configuration the store needs.
type Config interface {
	SessionPath() string
}

// Session is the draft and mode carried between CLI invocations. The
// collection and lookup result are never stored; the remote is authoritative.
type Session struct {
	Draft   appointment.Appointment `json:"draft"`
	Mode    scheduler.Mode          `json:"mode"`
	Updated time.Time               `json:"updated,omitempty"`
}

// Persistence stores named sessions.
type Persistence interface {
	LoadSession(name string) (Session, error)
	SaveSession(name string, s Session) error
	Clear(name string) error
	Sessions(ctx context.Context) []string
}

// Load creates a Persistence backed by diskv rooted at cfg.SessionPath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: no config")
	}
	basePath := strings.TrimSpace(cfg.SessionPath())
	if basePath == "" {
		return nil, errors.New("store: empty session path")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      64 * 1024,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// LoadSession returns the named session, or a blank create-mode session when
// none was saved.
func (p *persistence) LoadSession(name string) (Session, error) {
	key := toKey(name)
	if !p.d.Has(key) {
		return blankSession(), nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return Session{}, fmt.Errorf("store: read session %q: %w", normalize(name), err)
	}
	var s Session
	if err := json.Unmarshal(val, &s); err != nil {
		return Session{}, fmt.Errorf("store: decode session %q: %w", normalize(name), err)
	}
	mode, err := scheduler.ParseMode(string(s.Mode))
	if err != nil {
		return Session{}, fmt.Errorf("store: session %q: %w", normalize(name), err)
	}
	s.Mode = mode
	return s, nil
}

func (p *persistence) SaveSession(name string, s Session) error {
	if s.Mode == "" {
		s.Mode = scheduler.ModeCreate
	}
	s.Updated = time.Now().UTC()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode session: %w", err)
	}
	if err := p.d.Write(toKey(name), data); err != nil {
		return fmt.Errorf("store: write session %q: %w", normalize(name), err)
	}
	return nil
}

// Clear removes the named session. Clearing a missing session is not an error.
func (p *persistence) Clear(name string) error {
	key := toKey(name)
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: clear session %q: %w", normalize(name), err)
	}
	return nil
}

// Sessions lists saved session names, sorted.
func (p *persistence) Sessions(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.KeysPrefix(sessionPrefix+"-", ctx.Done()) {
		pk := keyToPathTransform(key)
		name, err := fromName(pk.FileName)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func blankSession() Session {
	return Session{Draft: appointment.Blank(), Mode: scheduler.ModeCreate}
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `session-<name>` with the name encoded so it is a safe file name.
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", sessionPrefix, toName(normalize(name)))
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultSession
	}
	return name
}

func toName(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func fromName(s string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
