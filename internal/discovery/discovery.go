package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"lasso/internal/domain"
	"lasso/internal/eventbus"
)

// DiscoveryService finds viewable documents in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, root string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ds.StartScan(context.Background(), event.Root)
		}
	})

	return ds
}

// StartScan scans a directory for viewable documents
func (ds *discoveryService) StartScan(ctx context.Context, root string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Root: root})

	docsFound := 0

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()

			ds.bus.Publish(eventbus.ScanCompletedEvent{DocsFound: docsFound})
		}()

		docsFound = ds.scanDirectory(scanCtx, root)
	}()

	return nil
}

// StopScan cancels an in-progress scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	cancel := ds.cancelFunc
	ds.mu.Unlock()

	if cancel != nil {
		cancel()
		ds.wg.Wait()
	}
}

// scanDirectory lists viewable documents directly under root, in name order
func (ds *discoveryService) scanDirectory(ctx context.Context, root string) int {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Warn().Err(err).Str("root", root).Msg("failed to read directory")
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("failed to scan %s", root),
			Err:     err,
		})
		return 0
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	found := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return found
		default:
		}

		if entry.IsDir() || !domain.IsViewable(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(root, entry.Name())
		ds.bus.Publish(eventbus.DocDiscoveredEvent{
			Doc: domain.DocInfo{
				Path: path,
				Name: entry.Name(),
				Kind: domain.KindForPath(path),
				Size: info.Size(),
			},
		})
		found++
	}

	log.Debug().Str("root", root).Int("docs", found).Msg("directory scan finished")
	return found
}
