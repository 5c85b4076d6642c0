package main

import (
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/prefabs"
)

// reloader watches the prefab directory and reports when any prefab's
// content actually changed.
type reloader struct {
	watcher      *prefabs.Watcher
	events       <-chan string
	errs         <-chan error
	log          *zap.Logger
	fingerprints map[string]uint64
}

func newReloader(log *zap.Logger) (*reloader, error) {
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		return nil, err
	}
	r := &reloader{
		watcher:      w,
		events:       w.Events,
		errs:         w.Errors,
		log:          log,
		fingerprints: make(map[string]uint64),
	}
	for _, name := range prefabs.DefaultArchetypes {
		if fp, err := prefabs.Fingerprint(name); err == nil {
			r.fingerprints[name] = fp
		}
	}
	return r, nil
}

// poll drains pending watcher events without blocking.
func (r *reloader) poll() bool {
	changed := false
	for {
		select {
		case path, ok := <-r.events:
			if !ok {
				r.events = nil
				return changed
			}
			if r.changed(prefabs.ArchetypeName(path)) {
				changed = true
			}
		case err, ok := <-r.errs:
			if !ok {
				r.errs = nil
				continue
			}
			r.log.Warn("prefab watcher", zap.Error(err))
		default:
			return changed
		}
	}
}

func (r *reloader) changed(name string) bool {
	fp, err := prefabs.Fingerprint(name)
	if err != nil {
		r.log.Warn("prefab fingerprint", zap.String("prefab", name), zap.Error(err))
		return false
	}
	if old, ok := r.fingerprints[name]; ok && old == fp {
		r.log.Debug("prefab touched without changes", zap.String("prefab", name))
		return false
	}
	r.fingerprints[name] = fp
	fields := []zap.Field{zap.String("prefab", name)}
	if mt, ok := prefabs.ModTime(name); ok {
		fields = append(fields, zap.Time("modified", mt))
	}
	r.log.Info("prefab changed", fields...)
	return true
}

func (r *reloader) Close() error {
	return r.watcher.Close()
}
