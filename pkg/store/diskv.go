// Package store remembers picked values by name on disk.
package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datepicker/pkg/date"
)

const bucket = "picks"

// ErrNotFound is returned when no pick is stored under a name.
var ErrNotFound = errors.New("store: pick not found")

// Pick is a remembered picker value.
type Pick struct {
	Name    string     `json:"name"`
	Value   date.Value `json:"value"`
	Text    string     `json:"text"`
	Format  string     `json:"format"`
	Updated time.Time  `json:"updated"`
}

// Persistence defines the persistence contract for remembered picks.
type Persistence interface {
	Get(name string) (*Pick, error)
	List(ctx context.Context) []*Pick
	Store(p *Pick) error
	Delete(name string) error
	BasePath() string
}

// Load creates a Persistence backed by diskv rooted at basePath.
func Load(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: empty base path")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string { return p.basePath }

func (p *persistence) Get(name string) (*Pick, error) {
	key := toKey(name)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.read(key)
}

func (p *persistence) read(key string) (*Pick, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	pick := &Pick{}
	if err := json.Unmarshal(val, pick); err != nil {
		return nil, fmt.Errorf("store: decoding %s: %w", key, err)
	}
	if pick.Name == "" {
		pick.Name = fromKey(key)
	}
	return pick, nil
}

func (p *persistence) List(ctx context.Context) []*Pick {
	all := make([]*Pick, 0)
	for key := range p.d.Keys(ctx.Done()) {
		pick, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, pick)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) Store(pick *Pick) error {
	if pick == nil || strings.TrimSpace(pick.Name) == "" {
		return errors.New("store: pick needs a name")
	}
	if pick.Updated.IsZero() {
		pick.Updated = time.Now()
	}
	b, err := json.Marshal(pick)
	if err != nil {
		return fmt.Errorf("store: encoding %q: %w", pick.Name, err)
	}
	return p.d.Write(toKey(pick.Name), b)
}

func (p *persistence) Delete(name string) error {
	key := toKey(name)
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.d.Erase(key)
}

// keyToPathTransform splits on the first dash only, the encoded name may
// contain more.
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
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `picks-<name>` with the name encoded so it is a safe file name.
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", bucket, base64.RawURLEncoding.EncodeToString([]byte(name)))
}

func fromKey(key string) string {
	pk := keyToPathTransform(key)
	name, err := base64.RawURLEncoding.DecodeString(pk.FileName)
	if err != nil {
		return fmt.Sprintf("fromKey: %s", err)
	}
	return string(name)
}
