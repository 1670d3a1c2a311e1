package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// decoded holds the shared pixel data of one asset, or the error that
// prevented it from loading.
type decoded struct {
	width  int
	height int
	pixels []byte
	err    error
}

// loaderImpl is the implementation of the Loader interface.
type loaderImpl struct {
	mu            sync.Mutex
	fsys          fs.FS
	cache         map[string]*decoded
	workers       int
	queueSize     int
	pool          worker.DynamicWorkerPool
	fallbackColor [4]byte
}

// Loader defines the interface for resolving asset identifiers into decoded
// textures.
//
// Decoded pixel data is cached per identifier, but every call returns a fresh
// Texture handle so each material can configure repeat, wrap and color space
// independently. A failed load is logged once per identifier and yields a 1x1
// placeholder texture alongside an *AssetLoadError.
type Loader interface {
	// Load resolves a single asset identifier.
	//
	// Parameters:
	//   - id: the asset path relative to the loader root (a leading "./" is ignored)
	//
	// Returns:
	//   - Texture: the decoded texture, or a placeholder if loading failed
	//   - error: an *AssetLoadError if loading failed, nil otherwise
	Load(id string) (Texture, error)

	// LoadAll resolves several asset identifiers concurrently on the loader's
	// worker pool. Every identifier is present in the result map, failed ones
	// mapped to a placeholder.
	//
	// Parameters:
	//   - ids: the asset paths to load
	//
	// Returns:
	//   - map[string]Texture: textures keyed by the identifier as passed in
	//   - error: the joined *AssetLoadError values, nil if every load succeeded
	LoadAll(ids ...string) (map[string]Texture, error)
}

var _ Loader = &loaderImpl{}

// NewLoader creates a Loader that reads encoded JPEG and PNG images from fsys.
//
// Parameters:
//   - fsys: the filesystem asset identifiers are resolved against
//   - opts: variadic list of LoaderBuilderOption functions to configure the loader
//
// Returns:
//   - Loader: a new Loader instance
func NewLoader(fsys fs.FS, opts ...LoaderBuilderOption) Loader {
	l := &loaderImpl{
		fsys:          fsys,
		cache:         make(map[string]*decoded),
		workers:       4,
		queueSize:     256,
		fallbackColor: [4]byte{255, 255, 255, 255},
	}
	for _, opt := range opts {
		opt(l)
	}

	// Idle workers exit after a second, asset loading happens in bursts.
	l.pool = worker.NewDynamicWorkerPool(l.workers, l.queueSize, 1*time.Second)
	return l
}

func (l *loaderImpl) Load(id string) (Texture, error) {
	key := cleanID(id)

	l.mu.Lock()
	d, ok := l.cache[key]
	l.mu.Unlock()

	if !ok {
		d = l.decode(key)

		l.mu.Lock()
		if existing, raced := l.cache[key]; raced {
			d = existing
		} else {
			l.cache[key] = d
			if d.err != nil {
				log.Printf("[Texture] failed to load %s: %v", key, d.err)
			}
		}
		l.mu.Unlock()
	}

	if d.err != nil {
		return newFallback(key, l.fallbackColor), &AssetLoadError{ID: key, Err: d.err}
	}
	return NewTexture(key, d.width, d.height, d.pixels), nil
}

func (l *loaderImpl) LoadAll(ids ...string) (map[string]Texture, error) {
	textures := make([]Texture, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		idx := i
		assetID := id
		l.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				textures[idx], errs[idx] = l.Load(assetID)
				return nil, nil
			},
		})
	}
	wg.Wait()

	out := make(map[string]Texture, len(ids))
	var loadErrs []error
	for i, id := range ids {
		out[id] = textures[i]
		if errs[i] != nil {
			loadErrs = append(loadErrs, errs[i])
		}
	}
	return out, joinLoadErrors(loadErrs)
}

// decode reads and decodes one asset into tightly packed RGBA8 pixels.
func (l *loaderImpl) decode(key string) *decoded {
	if l.fsys == nil {
		return &decoded{err: fmt.Errorf("no asset filesystem configured")}
	}
	file, err := l.fsys.Open(key)
	if err != nil {
		return &decoded{err: fmt.Errorf("failed to open texture file: %w", err)}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return &decoded{err: fmt.Errorf("failed to decode texture file: %w", err)}
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &decoded{width: bounds.Dx(), height: bounds.Dy(), pixels: rgba.Pix}
}

// cleanID normalizes an asset identifier into an fs.FS path.
func cleanID(id string) string {
	p := path.Clean(strings.ReplaceAll(id, "\\", "/"))
	p = strings.TrimPrefix(p, "/")
	return p
}
